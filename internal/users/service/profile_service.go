package service

import (
	"context"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
	"github.com/sos-giri/emergency-sos/internal/users/repository"
)

type ProfileService struct {
	users repository.Store
}

func NewProfileService(users repository.Store) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Load(ctx context.Context, id string) (*domain.UserRecord, error) {
	return s.users.GetByID(ctx, id)
}

// ProfileForm covers the editable fields. Email and PIN are not exposed for
// editing and ride along from the loaded record.
type ProfileForm struct {
	Name         string
	DateOfBirth  string
	FatherName   string
	FatherMobile string
	Address      string
	FriendName   string
	FriendMobile string
	BloodGroup   string
}

// Update fully replaces the stored record with the form state. Fields not
// represented in the form (location, registeredAt) are dropped from the
// post-write record on purpose.
func (s *ProfileService) Update(ctx context.Context, current *domain.UserRecord, form ProfileForm) error {
	rec := &domain.UserRecord{
		ID:           current.ID,
		Email:        current.Email,
		PIN:          current.PIN,
		Name:         form.Name,
		DateOfBirth:  form.DateOfBirth,
		FatherName:   form.FatherName,
		FatherMobile: form.FatherMobile,
		Address:      form.Address,
		FriendName:   form.FriendName,
		FriendMobile: form.FriendMobile,
		BloodGroup:   form.BloodGroup,
	}

	return s.users.Replace(ctx, current.ID, rec)
}
