package employees

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("Invalid ID format")
	ErrNotFound  = errors.New("Not found")
	ErrNoFields  = errors.New("no fields to update")
	ErrNoIDs     = errors.New("No valid employee IDs provided for deletion.")
	ErrEmptyName = errors.New("name is required.")
)

// Input carries the writable employee fields. Pointers distinguish "absent"
// from zero values so partial updates only touch submitted fields.
type Input struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Position *string  `json:"position,omitempty"`
	Salary   *float64 `json:"salary,omitempty"`
}

// ItemError records a per-item failure during a bulk insert, echoing the
// offending input.
type ItemError struct {
	Error string `json:"error"`
	Data  *Input `json:"data,omitempty"`
}

// BulkResult is the outcome of CreateMany: how many documents were inserted
// and which candidates failed. Partial success is Inserted > 0 with a
// non-empty error list.
type BulkResult struct {
	Inserted int
	Errors   []ItemError
}

// Service encapsulates employee business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// List returns every stored employee in the store's natural order
// (insertion order for an unindexed Mongo scan; no ordering is guaranteed).
func (s *Service) List(ctx context.Context) ([]*models.Employee, error) {
	return s.repo.List(ctx)
}

// CreateMany validates each candidate and inserts all valid ones in a
// single batch. Candidates without a name are collected as per-item errors
// and skipped; a batch-level store failure joins the same error list.
func (s *Service) CreateMany(ctx context.Context, items []Input) *BulkResult {
	now := time.Now().UTC()
	res := &BulkResult{Errors: []ItemError{}}
	docs := make([]*models.Employee, 0, len(items))
	for i := range items {
		in := items[i]
		if in.Name == nil || *in.Name == "" {
			res.Errors = append(res.Errors, ItemError{Error: ErrEmptyName.Error(), Data: &items[i]})
			continue
		}
		docs = append(docs, &models.Employee{
			Name:      *in.Name,
			Email:     in.Email,
			Position:  in.Position,
			Salary:    in.Salary,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if len(docs) > 0 {
		n, err := s.repo.InsertMany(ctx, docs)
		if err != nil {
			res.Errors = append(res.Errors, ItemError{Error: err.Error()})
		}
		res.Inserted = n
	}
	return res
}

// Get returns the employee with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	e, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// Update applies a partial update over the four writable fields and returns
// the document as re-read after the write. The update itself is atomic; the
// re-read is not isolated from concurrent writers, so the returned state may
// include interleaved changes. Setting name to an empty string is rejected
// to keep the stored-name invariant.
func (s *Service) Update(ctx context.Context, id string, in Input) (*models.Employee, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrEmptyName
		}
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Position != nil {
		fields["position"] = *in.Position
	}
	if in.Salary != nil {
		fields["salary"] = *in.Salary
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	fields["updated_at"] = time.Now().UTC()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	matched, err := s.repo.UpdateFields(ctx, oid, fields)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}
	e, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if e == nil {
		// deleted between the write and the re-read
		return nil, ErrNotFound
	}
	return e, nil
}

// DeleteOne removes a single employee by id.
func (s *Service) DeleteOne(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes all employees matching the given ids in one batch.
// Parsing is an all-or-nothing gate: the first unparsable id fails the whole
// request before anything is deleted. Returns the number actually deleted
// and the number requested (they differ when some ids match no document).
func (s *Service) DeleteMany(ctx context.Context, ids []string) (int64, int, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, 0, fmt.Errorf("%w in list: %s", ErrInvalidID, id)
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, 0, ErrNoIDs
	}
	deleted, err := s.repo.DeleteByIDs(ctx, oids)
	if err != nil {
		return 0, 0, err
	}
	return deleted, len(oids), nil
}
