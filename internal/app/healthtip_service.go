package app

import (
	"context"
	"fmt"
	"strings"

	"healthtracker/internal/domain"
)

// HealthTipService encapsulates health-tip use cases. Tips have no owning
// user, so there is no existence pre-check here.
type HealthTipService struct {
	repo domain.HealthTipRepository
}

// NewHealthTipService creates a HealthTipService backed by the given repository.
func NewHealthTipService(repo domain.HealthTipRepository) *HealthTipService {
	return &HealthTipService{repo: repo}
}

// Create validates and stores a new tip.
func (s *HealthTipService) Create(ctx context.Context, tips string) (*domain.HealthTip, error) {
	tips = strings.TrimSpace(tips)
	if tips == "" {
		return nil, fmt.Errorf("%w: tips text is required", ErrInvalid)
	}
	return s.repo.Create(ctx, tips)
}

// GetAll returns every tip.
func (s *HealthTipService) GetAll(ctx context.Context) ([]domain.HealthTip, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the tip with the given id.
func (s *HealthTipService) GetByID(ctx context.Context, id int64) (*domain.HealthTip, error) {
	return s.repo.GetByID(ctx, id)
}

// GetRandom returns one tip chosen at random, or domain.ErrNotFound when the
// table is empty.
func (s *HealthTipService) GetRandom(ctx context.Context) (*domain.HealthTip, error) {
	return s.repo.GetRandom(ctx)
}

// Update replaces the tip text when supplied; a nil patch value keeps the
// stored text unchanged.
func (s *HealthTipService) Update(ctx context.Context, id int64, tips *string) (*domain.HealthTip, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	text := cur.Tips
	if tips != nil {
		text = strings.TrimSpace(*tips)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: tips text is required", ErrInvalid)
	}
	return s.repo.Update(ctx, id, text)
}

// Delete removes the tip with the given id.
func (s *HealthTipService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
