package repository

import (
	"context"
	"fmt"

	"github.com/filehaven/filehaven/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const sessionKeyPrefix = "auth_"

// RedisSessionStore implements domain.SessionStore using Redis.
// Each session is a single key token -> userID with a fixed TTL;
// expiry is passive and handled entirely by Redis.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new Redis session store
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
	}
}

// Issue generates an opaque token for userID and stores it with the session TTL
func (r *RedisSessionStore) Issue(ctx context.Context, userID string) (string, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "session.Issue")
	defer span.End()

	token := uuid.NewString()
	key := sessionKeyPrefix + token

	if err := r.client.Set(ctx, key, userID, domain.SessionTTL).Err(); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id the token maps to. Unknown and expired
// tokens are indistinguishable and both yield ErrUnauthorized.
func (r *RedisSessionStore) Resolve(ctx context.Context, token string) (string, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "session.Resolve",
		trace.WithAttributes(attribute.String("session.key_prefix", sessionKeyPrefix)),
	)
	defer span.End()

	userID, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("session.result", "miss"))
			return "", domain.ErrUnauthorized
		}
		span.RecordError(err)
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}

	span.SetAttributes(attribute.String("session.result", "hit"))
	return userID, nil
}

// Revoke deletes the token mapping. Revoking an absent token is not an error.
func (r *RedisSessionStore) Revoke(ctx context.Context, token string) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "session.Revoke")
	defer span.End()

	if err := r.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
