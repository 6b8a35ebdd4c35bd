package app

import (
	"context"
	"fmt"
	"time"

	"healthtracker/internal/domain"
)

// BmiService encapsulates BMI measurement use cases. It consults the user
// repository so that a record can never reference a user that does not exist.
type BmiService struct {
	repo  domain.BmiRepository
	users domain.UserRepository
}

// NewBmiService creates a BmiService backed by the given repositories.
func NewBmiService(repo domain.BmiRepository, users domain.UserRepository) *BmiService {
	return &BmiService{repo: repo, users: users}
}

// Create validates a measurement, verifies the owning user exists, and
// inserts the record. Nothing is written when the user is missing.
func (s *BmiService) Create(ctx context.Context, b domain.Bmi) (*domain.Bmi, error) {
	if b.Weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be > 0", ErrInvalid)
	}
	if b.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be > 0", ErrInvalid)
	}
	if err := s.checkUser(ctx, b.UserID); err != nil {
		return nil, err
	}
	if b.Timestamp.IsZero() {
		b.Timestamp = time.Now().UTC()
	}
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	derive(created)
	return created, nil
}

// GetAll returns every BMI record.
func (s *BmiService) GetAll(ctx context.Context) ([]domain.Bmi, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		derive(&items[i])
	}
	return items, nil
}

// GetByID returns the BMI record with the given id.
func (s *BmiService) GetByID(ctx context.Context, id int64) (*domain.Bmi, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	derive(b)
	return b, nil
}

// GetByUserID returns the BMI records owned by a user; may be empty.
func (s *BmiService) GetByUserID(ctx context.Context, userID int64) ([]domain.Bmi, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		derive(&items[i])
	}
	return items, nil
}

// Update overlays the supplied fields onto the stored record and writes the
// merged row back. A changed owner is re-checked for existence.
func (s *BmiService) Update(ctx context.Context, id int64, patch domain.BmiPatch) (*domain.Bmi, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Weight != nil {
		cur.Weight = *patch.Weight
	}
	if patch.Height != nil {
		cur.Height = *patch.Height
	}
	if patch.Timestamp != nil {
		cur.Timestamp = *patch.Timestamp
	}
	if patch.UserID != nil && *patch.UserID != cur.UserID {
		if err := s.checkUser(ctx, *patch.UserID); err != nil {
			return nil, err
		}
		cur.UserID = *patch.UserID
	}
	if cur.Weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be > 0", ErrInvalid)
	}
	if cur.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be > 0", ErrInvalid)
	}
	updated, err := s.repo.Update(ctx, *cur)
	if err != nil {
		return nil, err
	}
	derive(updated)
	return updated, nil
}

// Delete removes the BMI record with the given id.
func (s *BmiService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *BmiService) checkUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no user with id %d", domain.ErrNotFound, userID)
	}
	return nil
}

func derive(b *domain.Bmi) {
	b.Value = domain.BodyMassIndex(b.Weight, b.Height)
	b.Category = domain.BMICategory(b.Value)
}
