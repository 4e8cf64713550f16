package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourbooking/internal/domain"
	"tourbooking/internal/pagination"
)

// fakeBookingRepo records created bookings for service tests.
type fakeBookingRepo struct {
	createErr error
	created   *domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = "booking-1"
	r.created = b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeBookingRepo) Find(_ context.Context, _ domain.Filter, _ domain.Sort, _, _ int) ([]*domain.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, _ domain.Filter, _ domain.Sort) ([]*domain.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) Count(_ context.Context, _ domain.Filter) (int, error) { return 0, nil }

// fakeTourLookup serves GetByID for booking creation checks.
type fakeTourLookup struct {
	tour *domain.Tour
}

func (r *fakeTourLookup) Create(_ context.Context, _ *domain.Tour) error { return nil }

func (r *fakeTourLookup) GetByID(_ context.Context, id string) (*domain.Tour, error) {
	if r.tour != nil && r.tour.ID == id {
		return r.tour, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeTourLookup) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeTourLookup) Find(_ context.Context, _ domain.Filter, _ domain.Sort, _, _ int) ([]*domain.Tour, error) {
	return nil, nil
}

func (r *fakeTourLookup) FindAll(_ context.Context, _ domain.Filter, _ domain.Sort) ([]*domain.Tour, error) {
	return nil, nil
}

func (r *fakeTourLookup) Count(_ context.Context, _ domain.Filter) (int, error) { return 0, nil }

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	existing := &domain.Tour{ID: "tour-1", Title: "Glacier Hike"}

	t.Run("valid booking gets reference and initial statuses", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewBookingService(repo, &fakeTourLookup{tour: existing}, pagination.Options{})

		b := &domain.Booking{
			TourID:        "tour-1",
			CustomerName:  "  Ada Lovelace ",
			CustomerEmail: "ADA@Example.com",
			Guests:        2,
			StartDate:     time.Now().Add(48 * time.Hour),
		}
		require.NoError(t, svc.CreateBooking(ctx, b))

		require.NotNil(t, repo.created)
		assert.NotEmpty(t, b.Reference)
		assert.Equal(t, domain.BookingPending, b.Status)
		assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
		assert.Equal(t, "Ada Lovelace", b.CustomerName)
		assert.Equal(t, "ada@example.com", b.CustomerEmail)
		assert.False(t, b.CreatedAt.IsZero())
	})

	t.Run("unknown tour", func(t *testing.T) {
		svc := NewBookingService(&fakeBookingRepo{}, &fakeTourLookup{}, pagination.Options{})
		err := svc.CreateBooking(ctx, &domain.Booking{
			TourID: "tour-missing", CustomerName: "Ada", CustomerEmail: "ada@example.com", Guests: 1,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("zero guests", func(t *testing.T) {
		svc := NewBookingService(&fakeBookingRepo{}, &fakeTourLookup{tour: existing}, pagination.Options{})
		err := svc.CreateBooking(ctx, &domain.Booking{
			TourID: "tour-1", CustomerName: "Ada", CustomerEmail: "ada@example.com", Guests: 0,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewBookingService(&fakeBookingRepo{}, &fakeTourLookup{tour: existing}, pagination.Options{})
		err := svc.CreateBooking(ctx, &domain.Booking{
			TourID: "tour-1", CustomerName: "Ada", CustomerEmail: "nope", Guests: 1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
