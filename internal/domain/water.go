package domain

import (
	"context"
	"time"
)

// Water is a single water-intake record. Litres is the amount drunk.
// Wire names ("litres", "dateofdrinking", "userid") follow the original API.
type Water struct {
	ID             int64     `json:"id"`
	Litres         float64   `json:"litres"`
	DateOfDrinking time.Time `json:"dateofdrinking"`
	UserID         int64     `json:"userid"`
}

// WaterPatch carries the fields a partial update may supply; nil means keep
// the current value. Clients may echo the record id in the body; the path id
// is authoritative and the body id is ignored.
type WaterPatch struct {
	ID             int64      `json:"id"`
	Litres         *float64   `json:"litres"`
	DateOfDrinking *time.Time `json:"dateofdrinking"`
	UserID         *int64     `json:"userid"`
}

// WaterRepository is the port for water persistence.
type WaterRepository interface {
	Create(ctx context.Context, wt Water) (*Water, error)
	GetAll(ctx context.Context) ([]Water, error)
	GetByID(ctx context.Context, id int64) (*Water, error)
	GetByUserID(ctx context.Context, userID int64) ([]Water, error)
	Update(ctx context.Context, wt Water) (*Water, error)
	Delete(ctx context.Context, id int64) error
}
