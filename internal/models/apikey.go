package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// APIKey is a document in the "api_keys" collection. Only the SHA-256 hash
// of the issued secret is persisted; the raw key is returned to the caller
// once at issuance and never stored.
type APIKey struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	KeyHash   string             `bson:"key_hash" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	Revoked   bool               `bson:"revoked" json:"revoked"`
}

// KeyInfo is the public projection of a validated key, attached to the
// request context by the auth middleware. The hash is not exposed.
type KeyInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
	Revoked   bool   `json:"revoked"`
}

// Info builds the public projection with timestamps rendered ISO-8601 UTC.
func (k *APIKey) Info() *KeyInfo {
	return &KeyInfo{
		ID:        k.ID.Hex(),
		Name:      k.Name,
		CreatedAt: k.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: k.ExpiresAt.UTC().Format(time.RFC3339Nano),
		Revoked:   k.Revoked,
	}
}
