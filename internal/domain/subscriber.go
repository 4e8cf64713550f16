package domain

import (
	"context"
	"time"
)

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

// Subscriber is a newsletter subscription record.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriberRepository defines the interface for subscriber storage.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *Subscriber) error
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter Filter, sort Sort, offset, limit int) ([]*Subscriber, error)
	FindAll(ctx context.Context, filter Filter, sort Sort) ([]*Subscriber, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

// SubscriberService defines the business operations on subscribers.
type SubscriberService interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, bool, error)
	Unsubscribe(ctx context.Context, id string) error
	ListSubscribers(ctx context.Context, filter Filter, sort Sort, pg Pagination) (*Page[*Subscriber], error)
}
