package app

import (
	"context"
	"fmt"
	"time"

	"healthtracker/internal/domain"
)

// WaterService encapsulates water-intake record use cases.
type WaterService struct {
	repo  domain.WaterRepository
	users domain.UserRepository
}

// NewWaterService creates a WaterService backed by the given repositories.
func NewWaterService(repo domain.WaterRepository, users domain.UserRepository) *WaterService {
	return &WaterService{repo: repo, users: users}
}

// Create validates a water record, verifies the owning user exists, and
// inserts it. Nothing is written when the user is missing.
func (s *WaterService) Create(ctx context.Context, wt domain.Water) (*domain.Water, error) {
	if wt.Litres < 0 {
		return nil, fmt.Errorf("%w: litres must be >= 0", ErrInvalid)
	}
	if err := s.checkUser(ctx, wt.UserID); err != nil {
		return nil, err
	}
	if wt.DateOfDrinking.IsZero() {
		wt.DateOfDrinking = time.Now().UTC()
	}
	return s.repo.Create(ctx, wt)
}

// GetAll returns every water record.
func (s *WaterService) GetAll(ctx context.Context) ([]domain.Water, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the water record with the given id.
func (s *WaterService) GetByID(ctx context.Context, id int64) (*domain.Water, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUserID returns the water records owned by a user; may be empty.
func (s *WaterService) GetByUserID(ctx context.Context, userID int64) ([]domain.Water, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Update overlays the supplied fields onto the stored record and writes the
// merged row back. A changed owner is re-checked for existence.
func (s *WaterService) Update(ctx context.Context, id int64, patch domain.WaterPatch) (*domain.Water, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Litres != nil {
		cur.Litres = *patch.Litres
	}
	if patch.DateOfDrinking != nil {
		cur.DateOfDrinking = *patch.DateOfDrinking
	}
	if patch.UserID != nil && *patch.UserID != cur.UserID {
		if err := s.checkUser(ctx, *patch.UserID); err != nil {
			return nil, err
		}
		cur.UserID = *patch.UserID
	}
	if cur.Litres < 0 {
		return nil, fmt.Errorf("%w: litres must be >= 0", ErrInvalid)
	}
	return s.repo.Update(ctx, *cur)
}

// Delete removes the water record with the given id.
func (s *WaterService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *WaterService) checkUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no user with id %d", domain.ErrNotFound, userID)
	}
	return nil
}
