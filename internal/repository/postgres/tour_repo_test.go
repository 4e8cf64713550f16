package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourbooking/internal/domain"
)

func tourRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "location", "difficulty", "price", "duration_days", "featured", "created_at", "updated_at"})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, "Tour "+id, "Reykjavik", "easy", 100.0, 3, false, now, now)
	}
	return rows
}

func TestTourRepository_Find(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.Filter
		sort      domain.Sort
		wantQuery string
		wantArgs  []driverValue
	}{
		{
			name:      "no filter, default sort",
			filter:    nil,
			sort:      domain.Sort{},
			wantQuery: `SELECT id, title, location, difficulty, price, duration_days, featured, created_at, updated_at FROM tours ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			wantArgs:  []driverValue{10, 20},
		},
		{
			name:      "filtered and sorted ascending",
			filter:    domain.Filter{"difficulty": "easy"},
			sort:      domain.Sort{Field: "price", Order: domain.SortAsc},
			wantQuery: `SELECT id, title, location, difficulty, price, duration_days, featured, created_at, updated_at FROM tours WHERE difficulty = $1 ORDER BY price ASC LIMIT $2 OFFSET $3`,
			wantArgs:  []driverValue{"easy", 10, 20},
		},
		{
			name:      "sort field outside column map falls back",
			filter:    nil,
			sort:      domain.Sort{Field: "secretColumn", Order: domain.SortAsc},
			wantQuery: `SELECT id, title, location, difficulty, price, duration_days, featured, created_at, updated_at FROM tours ORDER BY created_at ASC LIMIT $1 OFFSET $2`,
			wantArgs:  []driverValue{10, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(toDriverValues(tt.wantArgs)...).
				WillReturnRows(tourRows("t1", "t2"))

			repo := NewTourRepository(db)
			tours, err := repo.Find(context.Background(), tt.filter, tt.sort, 20, 10)
			require.NoError(t, err)
			assert.Len(t, tours, 2)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTourRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, location, difficulty, price, duration_days, featured, created_at, updated_at FROM tours WHERE featured = $1 ORDER BY created_at DESC`)).
		WithArgs("true").
		WillReturnRows(tourRows("t1", "t2", "t3"))

	repo := NewTourRepository(db)
	tours, err := repo.FindAll(context.Background(), domain.Filter{"featured": "true"}, domain.Sort{})
	require.NoError(t, err)
	assert.Len(t, tours, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTourRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM tours WHERE difficulty = $1`)).
		WithArgs("hard").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	repo := NewTourRepository(db)
	total, err := repo.Count(context.Background(), domain.Filter{"difficulty": "hard"})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestTourRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM tours WHERE id = \$1`).
			WithArgs("t1").
			WillReturnRows(tourRows("t1"))

		repo := NewTourRepository(db)
		tour, err := repo.GetByID(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", tour.ID)
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM tours WHERE id = \$1`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		repo := NewTourRepository(db)
		_, err = repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTourRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM tours WHERE id = \$1`).
			WithArgs("t1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewTourRepository(db)
		assert.NoError(t, repo.Delete(context.Background(), "t1"))
	})

	t.Run("zero rows maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM tours WHERE id = \$1`).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewTourRepository(db)
		assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), domain.ErrNotFound)
	})
}

// driverValue keeps the expectation tables readable.
type driverValue any

func toDriverValues(vals []driverValue) []driver.Value {
	out := make([]driver.Value, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
