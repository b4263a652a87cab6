package employees

import (
	"context"

	"github.com/staffdesk/staffdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence operations for employees. Lookups return
// (nil, nil) when no document matches; update/delete report whether a
// document was affected.
type Repository interface {
	InsertMany(ctx context.Context, docs []*models.Employee) (int, error)
	List(ctx context.Context) ([]*models.Employee, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new repository for the given collection
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) InsertMany(ctx context.Context, docs []*models.Employee) (int, error) {
	in := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		in = append(in, d)
	}
	res, err := r.col.InsertMany(ctx, in)
	if err != nil {
		return 0, err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(docs) {
			docs[i].ID = oid
		}
	}
	return len(res.InsertedIDs), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Employee, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.Employee{}
	for cur.Next(ctx) {
		var e models.Employee
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var e models.Employee
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *MongoRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
