package pagination

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourbooking/internal/domain"
)

// fakeSource serves a fixed item list, recording how it was queried.
type fakeSource struct {
	items []int

	findErr    error
	findAllErr error
	countErr   error

	findCalls    int
	findAllCalls int
	lastOffset   int
	lastLimit    int
}

func (s *fakeSource) Find(_ context.Context, _ domain.Filter, _ domain.Sort, offset, limit int) ([]int, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	s.findCalls++
	s.lastOffset = offset
	s.lastLimit = limit
	if offset > len(s.items) {
		offset = len(s.items)
	}
	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[offset:end], nil
}

func (s *fakeSource) FindAll(_ context.Context, _ domain.Filter, _ domain.Sort) ([]int, error) {
	if s.findAllErr != nil {
		return nil, s.findAllErr
	}
	s.findAllCalls++
	return s.items, nil
}

func (s *fakeSource) Count(_ context.Context, _ domain.Filter) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.items), nil
}

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_OffsetMode(t *testing.T) {
	src := &fakeSource{items: intRange(25)}
	pg := domain.Pagination{Page: 2, Limit: 10, Skip: 10}

	page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{})
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 11, page.Items[0])
	assert.Equal(t, domain.PageMeta{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, page.Meta)
	assert.Equal(t, 10, src.lastOffset)
	assert.Equal(t, 10, src.lastLimit)
	assert.Zero(t, src.findAllCalls, "offset mode must not materialize the full set")
}

func TestPaginate_OffsetModeEmpty(t *testing.T) {
	src := &fakeSource{}
	pg := domain.Pagination{Page: 1, Limit: 10}

	page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{})
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, domain.PageMeta{Page: 1, Limit: 10, Total: 0, TotalPages: 1}, page.Meta)
}

func TestPaginate_HybridAll(t *testing.T) {
	src := &fakeSource{items: intRange(5)}
	pg := domain.Pagination{Page: 1, All: true, UseHybrid: true}

	page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{})
	require.NoError(t, err)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, domain.PageMeta{Page: 1, Limit: 5, Total: 5, TotalPages: 1}, page.Meta)
	assert.Equal(t, 1, src.findAllCalls)
	assert.Zero(t, src.findCalls, "hybrid mode must not use store-level paging")
}

func TestPaginate_HybridNumericLimitSlices(t *testing.T) {
	src := &fakeSource{items: intRange(250)}
	// limit above the ceiling: second page of 150.
	pg := domain.Pagination{Page: 2, Limit: 150, Skip: 150, UseHybrid: true}

	page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{})
	require.NoError(t, err)

	assert.Len(t, page.Items, 100)
	assert.Equal(t, 151, page.Items[0])
	assert.Equal(t, domain.PageMeta{Page: 2, Limit: 150, Total: 250, TotalPages: 2}, page.Meta)
}

func TestPaginate_HybridSkipBeyondEnd(t *testing.T) {
	src := &fakeSource{items: intRange(5)}
	pg := domain.Pagination{Page: 3, Limit: 150, Skip: 300, UseHybrid: true}

	page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.Meta.Total)
}

func TestPaginate_HybridExtremeSkip(t *testing.T) {
	// Skip values at the edges of the int range must slice safely, not panic.
	tests := []struct {
		name string
		pg   domain.Pagination
	}{
		{"saturated skip", domain.Pagination{Page: 4611686018427387905, Limit: 102, Skip: math.MaxInt, UseHybrid: true}},
		{"negative skip", domain.Pagination{Page: 2, Limit: 102, Skip: math.MinInt, UseHybrid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{items: intRange(5)}

			page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, tt.pg, Options{})
			require.NoError(t, err)
			assert.Empty(t, page.Items)
			assert.Equal(t, 5, page.Meta.Total)
		})
	}
}

func TestPaginate_MemoryThreshold(t *testing.T) {
	src := &fakeSource{items: intRange(1001)}
	pg := domain.Pagination{Page: 1, All: true, UseHybrid: true}

	_, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{MemoryThreshold: 1000})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResultSetTooLarge)
	assert.Zero(t, src.findAllCalls, "capped scan must not fetch the result set")
}

func TestPaginate_MemoryThresholdDisabled(t *testing.T) {
	src := &fakeSource{items: intRange(1001)}
	pg := domain.Pagination{Page: 1, All: true, UseHybrid: true}

	page, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, pg, Options{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1001)
}

func TestPaginate_SourceErrors(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("find error propagates", func(t *testing.T) {
		src := &fakeSource{items: intRange(3), findErr: dbErr}
		_, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, domain.Pagination{Page: 1, Limit: 10}, Options{})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("count error propagates in hybrid mode", func(t *testing.T) {
		src := &fakeSource{items: intRange(3), countErr: dbErr}
		_, err := Paginate[int](context.Background(), src, nil, domain.Sort{}, domain.Pagination{All: true, UseHybrid: true}, Options{})
		assert.ErrorIs(t, err, dbErr)
	})
}
