package apikeys

import (
	"context"

	"github.com/staffdesk/staffdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence operations for API keys
type Repository interface {
	Insert(ctx context.Context, k *models.APIKey) error
	GetByHash(ctx context.Context, hash string) (*models.APIKey, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new repository for the given collection
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, k *models.APIKey) error {
	res, err := r.col.InsertOne(ctx, k)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		k.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetByHash(ctx context.Context, hash string) (*models.APIKey, error) {
	var k models.APIKey
	if err := r.col.FindOne(ctx, bson.M{"key_hash": hash}).Decode(&k); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &k, nil
}
