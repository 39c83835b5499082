package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepo catalog.ProfileRepository
	logger      logger.Logger
	now         func() time.Time
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo catalog.ProfileRepository, logger logger.Logger) (catalog.ProfileService, error) {
	return &profileService{profileRepo: profileRepo, logger: logger, now: time.Now}, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*catalog.ClientProfile, error) {
	return s.profileRepo.GetByID(ctx, userID)
}

func (s *profileService) Upsert(ctx context.Context, input *catalog.ProfileInput) (*catalog.ClientProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile, err := s.profileRepo.GetByID(ctx, input.UserID)
	switch {
	case errors.Is(err, catalog.ErrProfileNotFound):
		profile = &catalog.ClientProfile{
			ID:        input.UserID,
			Email:     strings.ToLower(strings.TrimSpace(input.Email)),
			CreatedAt: now,
		}
		applyProfileInput(profile, input, now)
		if err := profile.Validate(); err != nil {
			return nil, err
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	case err != nil:
		return nil, err
	}

	applyProfileInput(profile, input, now)
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Debug("Updated profile", "user_id", profile.ID)
	return profile, nil
}

func applyProfileInput(p *catalog.ClientProfile, in *catalog.ProfileInput, now time.Time) {
	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.Phone = in.Phone
	p.SMSNotifications = in.SMSNotifications
	p.UpdatedAt = now
}
