package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tourbooking/internal/domain"
)

// bookingColumns maps API field names to bookings table columns for filtering and sorting.
var bookingColumns = map[string]string{
	"tourId":        "tour_id",
	"status":        "status",
	"paymentStatus": "payment_status",
	"startDate":     "start_date",
	"createdAt":     "created_at",
}

const bookingSelect = `SELECT id, reference, tour_id, customer_name, customer_email, guests, status, payment_status, start_date, created_at, updated_at FROM bookings`

type bookingRepository struct {
	DB *sql.DB
}

// NewBookingRepository returns a domain.BookingRepository implemented with Postgres.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (reference, tour_id, customer_name, customer_email, guests, status, payment_status, start_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		b.Reference, b.TourID, b.CustomerName, b.CustomerEmail, b.Guests,
		b.Status, b.PaymentStatus, b.StartDate, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, bookingSelect+` WHERE id = $1`, id).Scan(
		&b.ID, &b.Reference, &b.TourID, &b.CustomerName, &b.CustomerEmail, &b.Guests,
		&b.Status, &b.PaymentStatus, &b.StartDate, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) Find(ctx context.Context, filter domain.Filter, sort domain.Sort, offset, limit int) ([]*domain.Booking, error) {
	where, args := buildWhere(filter, bookingColumns)
	query := bookingSelect + where + orderBy(sort, bookingColumns, "created_at") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryBookings(ctx, query, args)
}

func (r *bookingRepository) FindAll(ctx context.Context, filter domain.Filter, sort domain.Sort) ([]*domain.Booking, error) {
	where, args := buildWhere(filter, bookingColumns)
	return r.queryBookings(ctx, bookingSelect+where+orderBy(sort, bookingColumns, "created_at"), args)
}

func (r *bookingRepository) Count(ctx context.Context, filter domain.Filter) (int, error) {
	where, args := buildWhere(filter, bookingColumns)
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args []any) ([]*domain.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(
			&b.ID, &b.Reference, &b.TourID, &b.CustomerName, &b.CustomerEmail, &b.Guests,
			&b.Status, &b.PaymentStatus, &b.StartDate, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}
