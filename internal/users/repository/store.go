package repository

import (
	"context"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

// Store is the document-store surface the app consumes: fetch-by-key,
// set-at-key, full overwrite and a single equality query on email.
type Store interface {
	GetByID(ctx context.Context, id string) (*domain.UserRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	Create(ctx context.Context, rec *domain.UserRecord) error
	Replace(ctx context.Context, id string, rec *domain.UserRecord) error
}
