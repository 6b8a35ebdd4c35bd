package app_test

import (
	"context"
	"errors"
	"testing"

	"healthtracker/internal/app"
	"healthtracker/internal/domain"
)

type mockTipRepo struct {
	createFn  func(ctx context.Context, tips string) (*domain.HealthTip, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.HealthTip, error)
	updateFn  func(ctx context.Context, id int64, tips string) (*domain.HealthTip, error)
}

func (m *mockTipRepo) Create(ctx context.Context, tips string) (*domain.HealthTip, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tips)
	}
	return &domain.HealthTip{ID: 1, Tips: tips}, nil
}

func (m *mockTipRepo) GetAll(ctx context.Context) ([]domain.HealthTip, error) { return nil, nil }

func (m *mockTipRepo) GetByID(ctx context.Context, id int64) (*domain.HealthTip, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &domain.HealthTip{ID: id, Tips: "Drink more water"}, nil
}

func (m *mockTipRepo) GetRandom(ctx context.Context) (*domain.HealthTip, error) {
	return nil, domain.ErrNotFound
}

func (m *mockTipRepo) Update(ctx context.Context, id int64, tips string) (*domain.HealthTip, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, tips)
	}
	return &domain.HealthTip{ID: id, Tips: tips}, nil
}

func (m *mockTipRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestTipCreate_EmptyText(t *testing.T) {
	svc := app.NewHealthTipService(&mockTipRepo{})

	_, err := svc.Create(context.Background(), "   ")
	if !errors.Is(err, app.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestTipUpdate_NilPatchKeepsText(t *testing.T) {
	var written string
	svc := app.NewHealthTipService(&mockTipRepo{
		updateFn: func(_ context.Context, id int64, tips string) (*domain.HealthTip, error) {
			written = tips
			return &domain.HealthTip{ID: id, Tips: tips}, nil
		},
	})

	if _, err := svc.Update(context.Background(), 3, nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if written != "Drink more water" {
		t.Errorf("stored text should be retained, got %q", written)
	}
}

func TestTipUpdate_BlankTextRejected(t *testing.T) {
	svc := app.NewHealthTipService(&mockTipRepo{})

	// Whitespace-only text trims to empty and is invalid, same as on create.
	blank := "   "
	_, err := svc.Update(context.Background(), 3, &blank)
	if !errors.Is(err, app.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestTipUpdate_NewText(t *testing.T) {
	svc := app.NewHealthTipService(&mockTipRepo{})

	text := "Sleep eight hours"
	got, err := svc.Update(context.Background(), 3, &text)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Tips != "Sleep eight hours" {
		t.Errorf("tips = %q; want new text", got.Tips)
	}
}
