package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

const usersCollection = "users"

// FirestoreRepo stores user records in the external Firestore "users"
// collection. Every operation is a single SDK call; there is no transaction
// or uniqueness constraint beyond the caller's pre-write existence check.
type FirestoreRepo struct {
	client *firestore.Client
}

func NewFirestoreRepo(client *firestore.Client) *FirestoreRepo {
	return &FirestoreRepo{client: client}
}

func (r *FirestoreRepo) GetByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	var rec domain.UserRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	rec.ID = snap.Ref.ID
	return &rec, nil
}

func (r *FirestoreRepo) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	it := r.client.Collection(usersCollection).
		Where("email", "==", domain.NormalizeEmail(email)).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	var rec domain.UserRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
	}
	rec.ID = snap.Ref.ID
	return &rec, nil
}

func (r *FirestoreRepo) Create(ctx context.Context, rec *domain.UserRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("user id required")
	}
	if _, err := r.client.Collection(usersCollection).Doc(rec.ID).Create(ctx, rec); err != nil {
		return fmt.Errorf("create user %s: %w", rec.ID, err)
	}
	return nil
}

// Replace overwrites the whole document. Fields absent from rec (zero-valued
// with omitempty tags) disappear from the stored record.
func (r *FirestoreRepo) Replace(ctx context.Context, id string, rec *domain.UserRecord) error {
	if _, err := r.client.Collection(usersCollection).Doc(id).Set(ctx, rec); err != nil {
		return fmt.Errorf("replace user %s: %w", id, err)
	}
	return nil
}
