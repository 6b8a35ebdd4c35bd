package domain

import "context"

// HealthTip is a standalone piece of advice with no owning user.
type HealthTip struct {
	ID   int64  `json:"id"`
	Tips string `json:"tips"`
}

// HealthTipRepository is the port for health-tip persistence.
type HealthTipRepository interface {
	Create(ctx context.Context, tips string) (*HealthTip, error)
	GetAll(ctx context.Context) ([]HealthTip, error)
	GetByID(ctx context.Context, id int64) (*HealthTip, error)
	GetRandom(ctx context.Context) (*HealthTip, error)
	Update(ctx context.Context, id int64, tips string) (*HealthTip, error)
	Delete(ctx context.Context, id int64) error
}
