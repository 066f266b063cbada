package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sos-giri/emergency-sos/internal/device"
	"github.com/sos-giri/emergency-sos/internal/users/domain"
	"github.com/sos-giri/emergency-sos/internal/users/repository"
)

// AuthService implements the login and registration flows. "Auth" here is
// only an email lookup plus a plaintext PIN comparison; there is no token,
// hashing or lockout by contract.
type AuthService struct {
	users   repository.Store
	locator device.Locator
}

func NewAuthService(users repository.Store, locator device.Locator) *AuthService {
	return &AuthService{users: users, locator: locator}
}

// Login resolves the record for the lower-cased email and compares PINs.
// Returns domain.ErrUserNotFound or domain.ErrInvalidPIN on the two failure
// paths; any other error means the store call itself failed.
func (s *AuthService) Login(ctx context.Context, email, pin string) (*domain.UserRecord, error) {
	rec, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if rec.PIN != pin {
		return nil, domain.ErrInvalidPIN
	}
	return rec, nil
}

// RegistrationForm carries the full profile as submitted.
type RegistrationForm struct {
	Email        string
	PIN          string
	Name         string
	DateOfBirth  string
	FatherName   string
	FatherMobile string
	Address      string
	FriendName   string
	FriendMobile string
	BloodGroup   string
}

// Register checks email uniqueness, captures a best-effort location and
// writes the new record under a generated ID.
//
// The uniqueness check is a read followed by a separate write with no
// atomicity between them: two concurrent registrations with the same email
// can both succeed. Known limitation, inherited from the store's lack of a
// uniqueness constraint.
func (s *AuthService) Register(ctx context.Context, form RegistrationForm) (*domain.UserRecord, error) {
	email := domain.NormalizeEmail(form.Email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	// One-shot geolocation. Any failure (denied, timeout, unsupported)
	// proceeds without a location and surfaces nothing to the user.
	var loc *domain.Location
	if s.locator != nil {
		if loc, err = s.locator.Locate(ctx); err != nil {
			log.Printf("[warn] operation=register.locate error=%v", err)
			loc = nil
		}
	}

	rec := &domain.UserRecord{
		ID:           uuid.New().String(),
		Email:        email,
		PIN:          form.PIN,
		Name:         form.Name,
		DateOfBirth:  form.DateOfBirth,
		FatherName:   form.FatherName,
		FatherMobile: form.FatherMobile,
		Address:      form.Address,
		FriendName:   form.FriendName,
		FriendMobile: form.FriendMobile,
		BloodGroup:   form.BloodGroup,
		Location:     loc,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
