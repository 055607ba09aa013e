package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/filehaven/filehaven/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFileRepository implements domain.FileRepository
type MongoFileRepository struct {
	collection *mongo.Collection
}

func NewMongoFileRepository(db *mongo.Database) *MongoFileRepository {
	coll := db.Collection("files")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Listings filter by owner and parent; _id order gives insertion order
	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "parent_id", Value: 1}},
	})

	return &MongoFileRepository{
		collection: coll,
	}
}

func (r *MongoFileRepository) Create(ctx context.Context, node *domain.FileNode) error {
	node.CreatedAt = time.Now()
	objID := primitive.NewObjectID()
	node.ID = objID.Hex()

	doc := bson.M{
		"_id":        objID,
		"user_id":    node.OwnerID,
		"name":       node.Name,
		"type":       node.Type,
		"parent_id":  node.ParentID,
		"is_public":  node.IsPublic,
		"created_at": node.CreatedAt,
	}
	if node.BlobRef != "" {
		doc["blob_ref"] = node.BlobRef
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create file node: %w", err)
	}
	return nil
}

func (r *MongoFileRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.FileNode, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var raw bson.M
	filter := bson.M{"_id": objID, "user_id": ownerID}
	if err := r.collection.FindOne(ctx, filter).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file node: %w", err)
	}
	return mapBsonToFileNode(raw), nil
}

func (r *MongoFileRepository) GetAny(ctx context.Context, id string) (*domain.FileNode, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var raw bson.M
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file node: %w", err)
	}
	return mapBsonToFileNode(raw), nil
}

func (r *MongoFileRepository) List(ctx context.Context, ownerID, parentID string, page int64) ([]*domain.FileNode, error) {
	filter := bson.M{"user_id": ownerID, "parent_id": parentID}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(page * domain.PageSize).
		SetLimit(domain.PageSize)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list file nodes: %w", err)
	}
	defer cursor.Close(ctx)

	var nodes []*domain.FileNode
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		nodes = append(nodes, mapBsonToFileNode(raw))
	}
	return nodes, nil
}

func (r *MongoFileRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count file nodes: %w", err)
	}
	return n, nil
}

func mapBsonToFileNode(raw bson.M) *domain.FileNode {
	node := &domain.FileNode{}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		node.ID = oid.Hex()
	}
	if uid, ok := raw["user_id"].(string); ok {
		node.OwnerID = uid
	}
	if name, ok := raw["name"].(string); ok {
		node.Name = name
	}
	if typ, ok := raw["type"].(string); ok {
		node.Type = typ
	}
	if pid, ok := raw["parent_id"].(string); ok {
		node.ParentID = pid
	}
	if pub, ok := raw["is_public"].(bool); ok {
		node.IsPublic = pub
	}
	if ref, ok := raw["blob_ref"].(string); ok {
		node.BlobRef = ref
	}
	if created, ok := raw["created_at"].(primitive.DateTime); ok {
		node.CreatedAt = created.Time()
	}
	return node
}
