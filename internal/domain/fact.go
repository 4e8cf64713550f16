package domain

import (
	"context"
	"time"
)

// Fact is a short piece of destination trivia shown on the dashboard.
type Fact struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Text      string    `json:"text"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

// FactRepository defines the interface for fact storage.
type FactRepository interface {
	Create(ctx context.Context, fact *Fact) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter Filter, sort Sort, offset, limit int) ([]*Fact, error)
	FindAll(ctx context.Context, filter Filter, sort Sort) ([]*Fact, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

// FactService defines the business operations on facts.
type FactService interface {
	CreateFact(ctx context.Context, fact *Fact) error
	DeleteFact(ctx context.Context, id string) error
	ListFacts(ctx context.Context, filter Filter, sort Sort, pg Pagination) (*Page[*Fact], error)
}
