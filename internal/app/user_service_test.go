package app_test

import (
	"context"
	"errors"
	"testing"

	"healthtracker/internal/app"
	"healthtracker/internal/domain"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, name, email string) (*domain.User, error)
	getAllFn     func(ctx context.Context) ([]domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn     func(ctx context.Context, u domain.User) (*domain.User, error)
	deleteFn     func(ctx context.Context, id int64) error
	existsFn     func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, email)
	}
	return &domain.User{ID: 1, Name: name, Email: email}, nil
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &domain.User{ID: id, Name: "Alice", Email: "alice@x.com"}, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return &domain.User{ID: 1, Name: "Alice", Email: email}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	ret := u
	return &ret, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

func TestUserCreate_Validation(t *testing.T) {
	called := false
	svc := app.NewUserService(&mockUserRepo{
		createFn: func(_ context.Context, name, email string) (*domain.User, error) {
			called = true
			return &domain.User{ID: 1, Name: name, Email: email}, nil
		},
	})

	tests := []struct {
		name  string
		uname string
		email string
	}{
		{"empty name", "", "a@x.com"},
		{"empty email", "Alice", ""},
		{"email without at sign", "Alice", "not-an-email"},
		{"whitespace name", "   ", "a@x.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.uname, tc.email)
			if !errors.Is(err, app.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if called {
				t.Fatal("repository Create was called for invalid input")
			}
		})
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	svc := app.NewUserService(&mockUserRepo{
		createFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrConflict
		},
	})

	_, err := svc.Create(context.Background(), "Alice", "alice@x.com")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserUpdate_MergesOnlySuppliedFields(t *testing.T) {
	var written domain.User
	svc := app.NewUserService(&mockUserRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Old Name", Email: "old@x.com"}, nil
		},
		updateFn: func(_ context.Context, u domain.User) (*domain.User, error) {
			written = u
			ret := u
			return &ret, nil
		},
	})

	newName := "New Name"
	got, err := svc.Update(context.Background(), 7, domain.UserPatch{Name: &newName})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if written.Name != "New Name" {
		t.Errorf("name not applied: %q", written.Name)
	}
	if written.Email != "old@x.com" {
		t.Errorf("email should be retained, got %q", written.Email)
	}
	if got.ID != 7 {
		t.Errorf("id changed: %d", got.ID)
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	svc := app.NewUserService(&mockUserRepo{
		getByIDFn: func(context.Context, int64) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	})

	name := "X"
	_, err := svc.Update(context.Background(), 99999, domain.UserPatch{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
