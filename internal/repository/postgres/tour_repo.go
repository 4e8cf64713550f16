package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tourbooking/internal/domain"
)

// tourColumns maps API field names to tours table columns for filtering and sorting.
var tourColumns = map[string]string{
	"title":      "title",
	"location":   "location",
	"difficulty": "difficulty",
	"price":      "price",
	"featured":   "featured",
	"createdAt":  "created_at",
}

const tourSelect = `SELECT id, title, location, difficulty, price, duration_days, featured, created_at, updated_at FROM tours`

type tourRepository struct {
	DB *sql.DB
}

// NewTourRepository returns a domain.TourRepository implemented with Postgres.
func NewTourRepository(db *sql.DB) domain.TourRepository {
	return &tourRepository{DB: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	query := `
		INSERT INTO tours (title, location, difficulty, price, duration_days, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		tour.Title, tour.Location, tour.Difficulty, tour.Price,
		tour.DurationDays, tour.Featured, tour.CreatedAt, tour.UpdatedAt,
	).Scan(&tour.ID)
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	tour := &domain.Tour{}
	err := r.DB.QueryRowContext(ctx, tourSelect+` WHERE id = $1`, id).Scan(
		&tour.ID, &tour.Title, &tour.Location, &tour.Difficulty, &tour.Price,
		&tour.DurationDays, &tour.Featured, &tour.CreatedAt, &tour.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tour, nil
}

func (r *tourRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
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

func (r *tourRepository) Find(ctx context.Context, filter domain.Filter, sort domain.Sort, offset, limit int) ([]*domain.Tour, error) {
	where, args := buildWhere(filter, tourColumns)
	query := tourSelect + where + orderBy(sort, tourColumns, "created_at") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryTours(ctx, query, args)
}

func (r *tourRepository) FindAll(ctx context.Context, filter domain.Filter, sort domain.Sort) ([]*domain.Tour, error) {
	where, args := buildWhere(filter, tourColumns)
	return r.queryTours(ctx, tourSelect+where+orderBy(sort, tourColumns, "created_at"), args)
}

func (r *tourRepository) Count(ctx context.Context, filter domain.Filter) (int, error) {
	where, args := buildWhere(filter, tourColumns)
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tours`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *tourRepository) queryTours(ctx context.Context, query string, args []any) ([]*domain.Tour, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []*domain.Tour
	for rows.Next() {
		tour := &domain.Tour{}
		if err := rows.Scan(
			&tour.ID, &tour.Title, &tour.Location, &tour.Difficulty, &tour.Price,
			&tour.DurationDays, &tour.Featured, &tour.CreatedAt, &tour.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []*domain.Tour{}
	}
	return tours, nil
}
