package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a document in the "employees" collection. Name is the only
// required field; email, position and salary stay null when not supplied.
type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     *string            `bson:"email" json:"email"`
	Position  *string            `bson:"position" json:"position"`
	Salary    *float64           `bson:"salary" json:"salary"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Public renders the document for API responses: the Mongo _id becomes a
// string "id" and timestamps are ISO-8601 UTC.
func (e *Employee) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":         e.ID.Hex(),
		"name":       e.Name,
		"email":      e.Email,
		"position":   e.Position,
		"salary":     e.Salary,
		"created_at": e.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at": e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
