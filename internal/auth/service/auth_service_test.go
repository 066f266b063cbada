package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
	"github.com/sos-giri/emergency-sos/internal/users/repository"
)

type fakeLocator struct {
	loc *domain.Location
	err error
}

func (f *fakeLocator) Locate(ctx context.Context) (*domain.Location, error) {
	return f.loc, f.err
}

func validForm() RegistrationForm {
	return RegistrationForm{
		Email:        "A@B.Com",
		PIN:          "1234",
		Name:         "A",
		DateOfBirth:  "2000-01-01",
		FatherName:   "B",
		FatherMobile: "111",
		Address:      "C",
		FriendName:   "D",
		FriendMobile: "222",
		BloodGroup:   "O+",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates exactly one record with normalized email", func(t *testing.T) {
		repo := repository.NewMemoryRepo()
		svc := NewAuthService(repo, &fakeLocator{loc: &domain.Location{Latitude: 6.9, Longitude: 79.8}})

		rec, err := svc.Register(ctx, validForm())
		require.NoError(t, err)
		require.NotEmpty(t, rec.ID)
		assert.Equal(t, 1, repo.Len())

		stored, err := repo.GetByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", stored.Email)
		assert.Equal(t, "1234", stored.PIN)
		require.NotNil(t, stored.Location)
		assert.Equal(t, 6.9, stored.Location.Latitude)

		_, err = time.Parse(time.RFC3339, stored.RegisteredAt)
		assert.NoError(t, err, "registeredAt must be RFC3339")
	})

	t.Run("duplicate email writes nothing", func(t *testing.T) {
		repo := repository.NewMemoryRepo()
		svc := NewAuthService(repo, nil)

		_, err := svc.Register(ctx, validForm())
		require.NoError(t, err)

		form := validForm()
		form.Email = "a@b.COM"
		_, err = svc.Register(ctx, form)
		assert.Equal(t, domain.ErrEmailTaken, err)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("location failure proceeds without location", func(t *testing.T) {
		repo := repository.NewMemoryRepo()
		svc := NewAuthService(repo, &fakeLocator{err: errors.New("denied")})

		rec, err := svc.Register(ctx, validForm())
		require.NoError(t, err)

		stored, err := repo.GetByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.Location)
	})

	t.Run("nil locator is allowed", func(t *testing.T) {
		svc := NewAuthService(repository.NewMemoryRepo(), nil)
		rec, err := svc.Register(ctx, validForm())
		require.NoError(t, err)
		assert.Nil(t, rec.Location)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *domain.UserRecord) {
		repo := repository.NewMemoryRepo()
		svc := NewAuthService(repo, nil)
		rec, err := svc.Register(ctx, validForm())
		require.NoError(t, err)
		return svc, rec
	}

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Login(ctx, "nobody@b.com", "1234")
		assert.Equal(t, domain.ErrUserNotFound, err)
	})

	t.Run("pin mismatch", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Login(ctx, "a@b.com", "9999")
		assert.Equal(t, domain.ErrInvalidPIN, err)
	})

	t.Run("mixed-case email matches", func(t *testing.T) {
		svc, rec := setup(t)
		got, err := svc.Login(ctx, "A@B.com", "1234")
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
	})
}
