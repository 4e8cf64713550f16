package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tourbooking/internal/domain"
	"tourbooking/internal/pagination"
)

type bookingService struct {
	repo       domain.BookingRepository
	tourRepo   domain.TourRepository
	pagingOpts pagination.Options
}

// NewBookingService creates a BookingService with the given repositories.
func NewBookingService(repo domain.BookingRepository, tourRepo domain.TourRepository, pagingOpts pagination.Options) domain.BookingService {
	return &bookingService{repo: repo, tourRepo: tourRepo, pagingOpts: pagingOpts}
}

func (s *bookingService) CreateBooking(ctx context.Context, b *domain.Booking) error {
	b.CustomerName = strings.TrimSpace(b.CustomerName)
	b.CustomerEmail = strings.ToLower(strings.TrimSpace(b.CustomerEmail))
	if b.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	if !emailRegex.MatchString(b.CustomerEmail) {
		return fmt.Errorf("%w: invalid customer email", domain.ErrInvalidInput)
	}
	if b.Guests < 1 {
		return fmt.Errorf("%w: at least one guest is required", domain.ErrInvalidInput)
	}

	// The referenced tour must exist.
	if _, err := s.tourRepo.GetByID(ctx, b.TourID); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get tour: %w", err)
	}

	now := time.Now()
	b.Reference = uuid.NewString()
	b.Status = domain.BookingPending
	b.PaymentStatus = domain.PaymentUnpaid
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.repo.Create(ctx, b); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter domain.Filter, sort domain.Sort, pg domain.Pagination) (*domain.Page[*domain.Booking], error) {
	return pagination.Paginate(ctx, s.repo, filter, sort, pg, s.pagingOpts)
}
