package repository

import (
	"context"
	"sync"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

// MemoryRepo is an in-process Store used by tests and for running the app
// without Firestore credentials. Semantics match FirestoreRepo, including
// full-overwrite Replace.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]domain.UserRecord
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]domain.UserRecord)}
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &rec, nil
}

func (r *MemoryRepo) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	email = domain.NormalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.Email == email {
			out := rec
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryRepo) Create(ctx context.Context, rec *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[rec.ID] = *rec
	return nil
}

func (r *MemoryRepo) Replace(ctx context.Context, id string, rec *domain.UserRecord) error {
	cp := *rec
	cp.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[id] = cp
	return nil
}

// Len reports the number of stored records. Used by tests asserting that a
// rejected registration wrote nothing.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Remove drops a record. Not part of the Store surface; tests use it to
// simulate a stale session pointer.
func (r *MemoryRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
}
