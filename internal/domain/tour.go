package domain

import (
	"context"
	"time"
)

// Tour difficulty levels.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
)

// Tour represents a bookable tour listing.
type Tour struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Difficulty   string    `json:"difficulty"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TourRepository defines the interface for tour storage.
// Find, FindAll and Count take only allow-listed filter keys.
type TourRepository interface {
	Create(ctx context.Context, tour *Tour) error
	GetByID(ctx context.Context, id string) (*Tour, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter Filter, sort Sort, offset, limit int) ([]*Tour, error)
	FindAll(ctx context.Context, filter Filter, sort Sort) ([]*Tour, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

// TourService defines the business operations on tours.
type TourService interface {
	CreateTour(ctx context.Context, tour *Tour) error
	GetTour(ctx context.Context, id string) (*Tour, error)
	DeleteTour(ctx context.Context, id string) error
	ListTours(ctx context.Context, filter Filter, sort Sort, pg Pagination) (*Page[*Tour], error)
}
