// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthtracker/internal/domain"
)

// ErrInvalid indicates that a request carried missing or out-of-range fields.
// Handlers translate it into an HTTP 400 response.
var ErrInvalid = errors.New("invalid input")

// UserService encapsulates user CRUD use cases.
type UserService struct {
	repo domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create validates and stores a new user. A duplicate email surfaces as
// domain.ErrConflict.
func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalid)
	}
	return s.repo.Create(ctx, name, email)
}

// GetAll returns every user; an empty slice is a valid result.
func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail returns the user with the given email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Update overlays the supplied fields onto the stored user and writes the
// merged record back. Absent fields keep their current values.
func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		cur.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		cur.Email = strings.TrimSpace(*patch.Email)
	}
	if cur.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if cur.Email == "" || !strings.Contains(cur.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalid)
	}
	return s.repo.Update(ctx, *cur)
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
