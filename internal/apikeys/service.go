package apikeys

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"github.com/staffdesk/staffdesk/internal/models"
)

// Validation failure reasons. The middleware reports these verbatim to the
// client, so the wording is part of the API.
var (
	ErrNoKey      = errors.New("No key provided")
	ErrInvalidKey = errors.New("Invalid key")
	ErrRevoked    = errors.New("Key revoked")
	ErrExpired    = errors.New("Key expired")
)

const DefaultDaysValid = 30

// Service issues and validates API keys against the api_keys collection.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// HashKey returns the hex-encoded SHA-256 digest of a raw secret. Only the
// hash is ever persisted.
func HashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Create generates a new 256-bit secret, persists its hash and returns the
// raw secret together with issuance and expiry timestamps. The raw secret is
// shown to the caller exactly once; it cannot be recovered afterwards.
func (s *Service) Create(ctx context.Context, name string, daysValid int) (string, time.Time, time.Time, error) {
	if name == "" {
		name = "client"
	}
	if daysValid <= 0 {
		daysValid = DefaultDaysValid
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	raw := base64.RawURLEncoding.EncodeToString(b)

	created := time.Now().UTC()
	expires := created.Add(time.Duration(daysValid) * 24 * time.Hour)
	k := &models.APIKey{
		Name:      name,
		KeyHash:   HashKey(raw),
		CreatedAt: created,
		ExpiresAt: expires,
		Revoked:   false,
	}
	if err := s.repo.Insert(ctx, k); err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	return raw, created, expires, nil
}

// Validate checks a raw secret against the stored hashes. It is read-only:
// no counters or last-used markers are written. Failure reasons are the
// sentinel errors above; on success the public projection of the matching
// record is returned.
func (s *Service) Validate(ctx context.Context, raw string) (*models.KeyInfo, error) {
	if raw == "" {
		return nil, ErrNoKey
	}
	k, err := s.repo.GetByHash(ctx, HashKey(raw))
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, ErrInvalidKey
	}
	if k.Revoked {
		return nil, ErrRevoked
	}
	// Stored timestamps may come back without location info depending on the
	// driver; compare as UTC instants.
	if time.Now().UTC().After(k.ExpiresAt.UTC()) {
		return nil, ErrExpired
	}
	return k.Info(), nil
}
