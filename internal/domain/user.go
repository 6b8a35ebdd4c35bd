// Package domain contains the core business entities and interfaces.
package domain

import "context"

// User is the root entity; every measurement record references one.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch carries the fields a partial update may supply; nil means keep
// the current value. Clients may echo the record id in the body; the path id
// is authoritative and the body id is ignored.
type UserPatch struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserRepository is the port for user persistence.
type UserRepository interface {
	Create(ctx context.Context, name, email string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u User) (*User, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
