package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"golang.org/x/sync/errgroup"

	"github.com/filehaven/filehaven/internal/config"
	"github.com/filehaven/filehaven/internal/domain"
	"github.com/filehaven/filehaven/internal/repository"
	"github.com/filehaven/filehaven/internal/server"
	"github.com/filehaven/filehaven/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting FileHaven API...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelProvider, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: cfg.OTEL.ServiceVersion,
		Environment:    cfg.OTEL.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
		Enabled:        cfg.OTEL.Enabled,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize OpenTelemetry: %v", err)
	}
	if otelProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			otelProvider.Shutdown(shutdownCtx)
		}()
	}

	// Connect to MongoDB
	ctxMongo, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoOpts := options.Client().ApplyURI(cfg.MongoDB.URI)
	if cfg.OTEL.Enabled {
		mongoOpts.SetMonitor(otelmongo.NewMonitor())
	}

	mongoClient, err := mongo.Connect(ctxMongo, mongoOpts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(ctxMongo, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("MongoDB connected")

	mongoDB := mongoClient.Database(cfg.MongoDB.Database)

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected")

	// Select the blob backend
	var blobs domain.BlobStore
	switch cfg.Storage.Backend {
	case "s3":
		blobs, err = repository.NewS3BlobStore(ctx, cfg.Storage.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		log.Printf("Blob storage: s3 (%s)", cfg.Storage.S3.Endpoint)
	default:
		blobs = repository.NewDiskBlobStore(cfg.Storage.FolderPath)
		log.Printf("Blob storage: local (%s)", cfg.Storage.FolderPath)
	}

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		Users:       repository.NewMongoUserRepository(mongoDB),
		Files:       repository.NewMongoFileRepository(mongoDB),
		Blobs:       blobs,
		Sessions:    repository.NewRedisSessionStore(redisClient),
		RedisClient: redisClient,
		MongoPing: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
		RedisPing: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(":" + cfg.Server.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")
		return app.ShutdownWithTimeout(5 * time.Second)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
