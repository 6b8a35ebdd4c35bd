// Package memory implements the domain repositories in process memory. It
// stands in for the relational engine in tests and local development, the
// same role H2 played for the original service.
package memory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"healthtracker/internal/domain"
)

// DB holds all tables behind a single mutex. Per-entity repositories share
// one DB so foreign-key checks observe the same state as writes.
type DB struct {
	mu    sync.Mutex
	users []domain.User
	bmis  []domain.Bmi
	sleep []domain.Sleep
	water []domain.Water
	tips  []domain.HealthTip

	userIDCounter  int64
	bmiIDCounter   int64
	sleepIDCounter int64
	waterIDCounter int64
	tipIDCounter   int64
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.BmiRepository = (*BmiRepo)(nil)
var _ domain.SleepRepository = (*SleepRepo)(nil)
var _ domain.WaterRepository = (*WaterRepo)(nil)
var _ domain.HealthTipRepository = (*HealthTipRepo)(nil)

// --- UserRepository ---

// UserRepo implements domain.UserRepository on a shared DB.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create adds a user, enforcing email uniqueness.
func (r *UserRepo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return nil, fmt.Errorf("email %q already registered: %w", email, domain.ErrConflict)
		}
	}

	r.db.userIDCounter++
	u := domain.User{ID: r.db.userIDCounter, Name: name, Email: email}
	r.db.users = append(r.db.users, u)
	return &u, nil
}

// GetAll returns every user.
func (r *UserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.User, len(r.db.users))
	copy(out, r.db.users)
	return out, nil
}

// GetByID returns the user with the given id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			ret := u
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
}

// GetByEmail returns the user with the given email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			ret := u
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
}

// Update writes the full row back, enforcing email uniqueness.
func (r *UserRepo) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, other := range r.db.users {
		if other.ID != u.ID && other.Email == u.Email {
			return nil, fmt.Errorf("email %q already registered: %w", u.Email, domain.ErrConflict)
		}
	}
	for i := range r.db.users {
		if r.db.users[i].ID == u.ID {
			r.db.users[i] = u
			ret := u
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", u.ID, domain.ErrNotFound)
}

// Delete removes the user with the given id.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, u := range r.db.users {
		if u.ID == id {
			r.db.users = append(r.db.users[:i], r.db.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
}

// Exists reports whether a user with the given id is present.
func (r *UserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// --- BmiRepository ---

// BmiRepo implements domain.BmiRepository on a shared DB.
type BmiRepo struct {
	db *DB
}

// NewBmiRepo wraps a DB as a BmiRepository.
func NewBmiRepo(db *DB) *BmiRepo {
	return &BmiRepo{db: db}
}

// Create adds a BMI record.
func (r *BmiRepo) Create(ctx context.Context, b domain.Bmi) (*domain.Bmi, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.bmiIDCounter++
	b.ID = r.db.bmiIDCounter
	b.Timestamp = b.Timestamp.UTC()
	b.Value, b.Category = 0, ""
	r.db.bmis = append(r.db.bmis, b)
	ret := b
	return &ret, nil
}

// GetAll returns every BMI record.
func (r *BmiRepo) GetAll(ctx context.Context) ([]domain.Bmi, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Bmi, len(r.db.bmis))
	copy(out, r.db.bmis)
	return out, nil
}

// GetByID returns the BMI record with the given id.
func (r *BmiRepo) GetByID(ctx context.Context, id int64) (*domain.Bmi, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, b := range r.db.bmis {
		if b.ID == id {
			ret := b
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("bmi %d: %w", id, domain.ErrNotFound)
}

// GetByUserID returns the BMI records owned by a user.
func (r *BmiRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Bmi, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Bmi, 0)
	for _, b := range r.db.bmis {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Update writes the full row back.
func (r *BmiRepo) Update(ctx context.Context, b domain.Bmi) (*domain.Bmi, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.bmis {
		if r.db.bmis[i].ID == b.ID {
			b.Timestamp = b.Timestamp.UTC()
			b.Value, b.Category = 0, ""
			r.db.bmis[i] = b
			ret := b
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("bmi %d: %w", b.ID, domain.ErrNotFound)
}

// Delete removes the BMI record with the given id.
func (r *BmiRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, b := range r.db.bmis {
		if b.ID == id {
			r.db.bmis = append(r.db.bmis[:i], r.db.bmis[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("bmi %d: %w", id, domain.ErrNotFound)
}

// --- SleepRepository ---

// SleepRepo implements domain.SleepRepository on a shared DB.
type SleepRepo struct {
	db *DB
}

// NewSleepRepo wraps a DB as a SleepRepository.
func NewSleepRepo(db *DB) *SleepRepo {
	return &SleepRepo{db: db}
}

// Create adds a sleep record.
func (r *SleepRepo) Create(ctx context.Context, sl domain.Sleep) (*domain.Sleep, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sleepIDCounter++
	sl.ID = r.db.sleepIDCounter
	sl.Date = sl.Date.UTC()
	r.db.sleep = append(r.db.sleep, sl)
	ret := sl
	return &ret, nil
}

// GetAll returns every sleep record.
func (r *SleepRepo) GetAll(ctx context.Context) ([]domain.Sleep, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Sleep, len(r.db.sleep))
	copy(out, r.db.sleep)
	return out, nil
}

// GetByID returns the sleep record with the given id.
func (r *SleepRepo) GetByID(ctx context.Context, id int64) (*domain.Sleep, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, sl := range r.db.sleep {
		if sl.ID == id {
			ret := sl
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("sleep %d: %w", id, domain.ErrNotFound)
}

// GetByUserID returns the sleep records owned by a user.
func (r *SleepRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Sleep, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Sleep, 0)
	for _, sl := range r.db.sleep {
		if sl.UserID == userID {
			out = append(out, sl)
		}
	}
	return out, nil
}

// Update writes the full row back.
func (r *SleepRepo) Update(ctx context.Context, sl domain.Sleep) (*domain.Sleep, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.sleep {
		if r.db.sleep[i].ID == sl.ID {
			sl.Date = sl.Date.UTC()
			r.db.sleep[i] = sl
			ret := sl
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("sleep %d: %w", sl.ID, domain.ErrNotFound)
}

// Delete removes the sleep record with the given id.
func (r *SleepRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, sl := range r.db.sleep {
		if sl.ID == id {
			r.db.sleep = append(r.db.sleep[:i], r.db.sleep[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("sleep %d: %w", id, domain.ErrNotFound)
}

// --- WaterRepository ---

// WaterRepo implements domain.WaterRepository on a shared DB.
type WaterRepo struct {
	db *DB
}

// NewWaterRepo wraps a DB as a WaterRepository.
func NewWaterRepo(db *DB) *WaterRepo {
	return &WaterRepo{db: db}
}

// Create adds a water record.
func (r *WaterRepo) Create(ctx context.Context, wt domain.Water) (*domain.Water, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.waterIDCounter++
	wt.ID = r.db.waterIDCounter
	wt.DateOfDrinking = wt.DateOfDrinking.UTC()
	r.db.water = append(r.db.water, wt)
	ret := wt
	return &ret, nil
}

// GetAll returns every water record.
func (r *WaterRepo) GetAll(ctx context.Context) ([]domain.Water, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Water, len(r.db.water))
	copy(out, r.db.water)
	return out, nil
}

// GetByID returns the water record with the given id.
func (r *WaterRepo) GetByID(ctx context.Context, id int64) (*domain.Water, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, wt := range r.db.water {
		if wt.ID == id {
			ret := wt
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("water %d: %w", id, domain.ErrNotFound)
}

// GetByUserID returns the water records owned by a user.
func (r *WaterRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Water, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Water, 0)
	for _, wt := range r.db.water {
		if wt.UserID == userID {
			out = append(out, wt)
		}
	}
	return out, nil
}

// Update writes the full row back.
func (r *WaterRepo) Update(ctx context.Context, wt domain.Water) (*domain.Water, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.water {
		if r.db.water[i].ID == wt.ID {
			wt.DateOfDrinking = wt.DateOfDrinking.UTC()
			r.db.water[i] = wt
			ret := wt
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("water %d: %w", wt.ID, domain.ErrNotFound)
}

// Delete removes the water record with the given id.
func (r *WaterRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, wt := range r.db.water {
		if wt.ID == id {
			r.db.water = append(r.db.water[:i], r.db.water[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("water %d: %w", id, domain.ErrNotFound)
}

// --- HealthTipRepository ---

// HealthTipRepo implements domain.HealthTipRepository on a shared DB.
type HealthTipRepo struct {
	db *DB
}

// NewHealthTipRepo wraps a DB as a HealthTipRepository.
func NewHealthTipRepo(db *DB) *HealthTipRepo {
	return &HealthTipRepo{db: db}
}

// Create adds a tip.
func (r *HealthTipRepo) Create(ctx context.Context, tips string) (*domain.HealthTip, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.tipIDCounter++
	t := domain.HealthTip{ID: r.db.tipIDCounter, Tips: tips}
	r.db.tips = append(r.db.tips, t)
	return &t, nil
}

// GetAll returns every tip.
func (r *HealthTipRepo) GetAll(ctx context.Context) ([]domain.HealthTip, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.HealthTip, len(r.db.tips))
	copy(out, r.db.tips)
	return out, nil
}

// GetByID returns the tip with the given id.
func (r *HealthTipRepo) GetByID(ctx context.Context, id int64) (*domain.HealthTip, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, t := range r.db.tips {
		if t.ID == id {
			ret := t
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("health tip %d: %w", id, domain.ErrNotFound)
}

// GetRandom returns one tip chosen at random.
func (r *HealthTipRepo) GetRandom(ctx context.Context) (*domain.HealthTip, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if len(r.db.tips) == 0 {
		return nil, fmt.Errorf("no health tips: %w", domain.ErrNotFound)
	}
	ret := r.db.tips[rand.IntN(len(r.db.tips))]
	return &ret, nil
}

// Update replaces the tip text.
func (r *HealthTipRepo) Update(ctx context.Context, id int64, tips string) (*domain.HealthTip, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.tips {
		if r.db.tips[i].ID == id {
			r.db.tips[i].Tips = tips
			ret := r.db.tips[i]
			return &ret, nil
		}
	}
	return nil, fmt.Errorf("health tip %d: %w", id, domain.ErrNotFound)
}

// Delete removes the tip with the given id.
func (r *HealthTipRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, t := range r.db.tips {
		if t.ID == id {
			r.db.tips = append(r.db.tips[:i], r.db.tips[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("health tip %d: %w", id, domain.ErrNotFound)
}
