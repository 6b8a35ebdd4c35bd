package domain

import (
	"context"
	"time"
)

// Sleep is a single night's sleep record. Duration is in hours.
// The wire format uses lowercase "userid", inherited from the original API.
type Sleep struct {
	ID       int64     `json:"id"`
	Duration float64   `json:"duration"`
	Date     time.Time `json:"date"`
	UserID   int64     `json:"userid"`
}

// SleepPatch carries the fields a partial update may supply; nil means keep
// the current value. Clients may echo the record id in the body; the path id
// is authoritative and the body id is ignored.
type SleepPatch struct {
	ID       int64      `json:"id"`
	Duration *float64   `json:"duration"`
	Date     *time.Time `json:"date"`
	UserID   *int64     `json:"userid"`
}

// SleepRepository is the port for sleep persistence.
type SleepRepository interface {
	Create(ctx context.Context, sl Sleep) (*Sleep, error)
	GetAll(ctx context.Context) ([]Sleep, error)
	GetByID(ctx context.Context, id int64) (*Sleep, error)
	GetByUserID(ctx context.Context, userID int64) ([]Sleep, error)
	Update(ctx context.Context, sl Sleep) (*Sleep, error)
	Delete(ctx context.Context, id int64) error
}
