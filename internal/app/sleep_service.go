package app

import (
	"context"
	"fmt"
	"time"

	"healthtracker/internal/domain"
)

// SleepService encapsulates sleep record use cases.
type SleepService struct {
	repo  domain.SleepRepository
	users domain.UserRepository
}

// NewSleepService creates a SleepService backed by the given repositories.
func NewSleepService(repo domain.SleepRepository, users domain.UserRepository) *SleepService {
	return &SleepService{repo: repo, users: users}
}

// Create validates a sleep record, verifies the owning user exists, and
// inserts it. Nothing is written when the user is missing.
func (s *SleepService) Create(ctx context.Context, sl domain.Sleep) (*domain.Sleep, error) {
	if sl.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must be non-negative", ErrInvalid)
	}
	if err := s.checkUser(ctx, sl.UserID); err != nil {
		return nil, err
	}
	if sl.Date.IsZero() {
		sl.Date = time.Now().UTC()
	}
	return s.repo.Create(ctx, sl)
}

// GetAll returns every sleep record.
func (s *SleepService) GetAll(ctx context.Context) ([]domain.Sleep, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the sleep record with the given id.
func (s *SleepService) GetByID(ctx context.Context, id int64) (*domain.Sleep, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUserID returns the sleep records owned by a user; may be empty.
func (s *SleepService) GetByUserID(ctx context.Context, userID int64) ([]domain.Sleep, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Update overlays the supplied fields onto the stored record and writes the
// merged row back. A changed owner is re-checked for existence.
func (s *SleepService) Update(ctx context.Context, id int64, patch domain.SleepPatch) (*domain.Sleep, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Duration != nil {
		cur.Duration = *patch.Duration
	}
	if patch.Date != nil {
		cur.Date = *patch.Date
	}
	if patch.UserID != nil && *patch.UserID != cur.UserID {
		if err := s.checkUser(ctx, *patch.UserID); err != nil {
			return nil, err
		}
		cur.UserID = *patch.UserID
	}
	if cur.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must be non-negative", ErrInvalid)
	}
	return s.repo.Update(ctx, *cur)
}

// Delete removes the sleep record with the given id.
func (s *SleepService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *SleepService) checkUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no user with id %d", domain.ErrNotFound, userID)
	}
	return nil
}
