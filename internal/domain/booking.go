package domain

import (
	"context"
	"time"
)

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Booking represents a reservation of a tour for a number of guests.
type Booking struct {
	ID            string    `json:"id"`
	Reference     string    `json:"reference"`
	TourID        string    `json:"tour_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	StartDate     time.Time `json:"start_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter Filter, sort Sort, offset, limit int) ([]*Booking, error)
	FindAll(ctx context.Context, filter Filter, sort Sort) ([]*Booking, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

// BookingService defines the business operations on bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBooking(ctx context.Context, id string) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	ListBookings(ctx context.Context, filter Filter, sort Sort, pg Pagination) (*Page[*Booking], error)
}
