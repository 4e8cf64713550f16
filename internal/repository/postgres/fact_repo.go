package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tourbooking/internal/domain"
)

// factColumns maps API field names to facts table columns for filtering and sorting.
var factColumns = map[string]string{
	"category":  "category",
	"views":     "views",
	"createdAt": "created_at",
}

const factSelect = `SELECT id, category, text, views, created_at FROM facts`

type factRepository struct {
	DB *sql.DB
}

// NewFactRepository returns a domain.FactRepository implemented with Postgres.
func NewFactRepository(db *sql.DB) domain.FactRepository {
	return &factRepository{DB: db}
}

func (r *factRepository) Create(ctx context.Context, fact *domain.Fact) error {
	query := `
		INSERT INTO facts (category, text, views, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		fact.Category, fact.Text, fact.Views, fact.CreatedAt,
	).Scan(&fact.ID)
}

func (r *factRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM facts WHERE id = $1`, id)
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

func (r *factRepository) Find(ctx context.Context, filter domain.Filter, sort domain.Sort, offset, limit int) ([]*domain.Fact, error) {
	where, args := buildWhere(filter, factColumns)
	query := factSelect + where + orderBy(sort, factColumns, "created_at") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryFacts(ctx, query, args)
}

func (r *factRepository) FindAll(ctx context.Context, filter domain.Filter, sort domain.Sort) ([]*domain.Fact, error) {
	where, args := buildWhere(filter, factColumns)
	return r.queryFacts(ctx, factSelect+where+orderBy(sort, factColumns, "created_at"), args)
}

func (r *factRepository) Count(ctx context.Context, filter domain.Filter) (int, error) {
	where, args := buildWhere(filter, factColumns)
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM facts`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *factRepository) queryFacts(ctx context.Context, query string, args []any) ([]*domain.Fact, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []*domain.Fact
	for rows.Next() {
		fact := &domain.Fact{}
		if err := rows.Scan(&fact.ID, &fact.Category, &fact.Text, &fact.Views, &fact.CreatedAt); err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if facts == nil {
		facts = []*domain.Fact{}
	}
	return facts, nil
}
