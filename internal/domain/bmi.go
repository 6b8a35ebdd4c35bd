package domain

import (
	"context"
	"time"
)

// Bmi is a single body-mass-index measurement. Weight is in kilograms and
// height in centimeters. Value and Category are derived on read and never
// stored.
type Bmi struct {
	ID        int64     `json:"id"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"userId"`
	Value     float64   `json:"bmi,omitempty"`
	Category  string    `json:"category,omitempty"`
}

// BmiPatch carries the fields a partial update may supply; nil means keep
// the current value. Clients may echo the record id in the body; the path id
// is authoritative and the body id is ignored.
type BmiPatch struct {
	ID        int64      `json:"id"`
	Weight    *float64   `json:"weight"`
	Height    *float64   `json:"height"`
	Timestamp *time.Time `json:"timestamp"`
	UserID    *int64     `json:"userId"`
}

// BmiRepository is the port for BMI persistence.
type BmiRepository interface {
	Create(ctx context.Context, b Bmi) (*Bmi, error)
	GetAll(ctx context.Context) ([]Bmi, error)
	GetByID(ctx context.Context, id int64) (*Bmi, error)
	GetByUserID(ctx context.Context, userID int64) ([]Bmi, error)
	Update(ctx context.Context, b Bmi) (*Bmi, error)
	Delete(ctx context.Context, id int64) error
}

// BodyMassIndex computes weight/(height^2) with weight in kilograms and
// height in centimeters. Returns 0 for non-positive inputs.
func BodyMassIndex(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// BMICategory returns the WHO classification band for a BMI value.
func BMICategory(v float64) string {
	switch {
	case v <= 0:
		return ""
	case v < 18.5:
		return "Underweight"
	case v < 25.0:
		return "Normal weight"
	case v < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
