// Package pagination executes list queries in one of two modes: native
// store-level offset pagination, or a hybrid in-memory scan used when the
// caller asked for every record (limit=all) or for a page size above the
// configured ceiling.
package pagination

import (
	"context"
	"fmt"

	"tourbooking/internal/domain"
)

// Source is the store-side contract the executor paginates over.
// Repositories implement it per entity; filter keys are allow-listed upstream.
type Source[T any] interface {
	Find(ctx context.Context, filter domain.Filter, sort domain.Sort, offset, limit int) ([]T, error)
	FindAll(ctx context.Context, filter domain.Filter, sort domain.Sort) ([]T, error)
	Count(ctx context.Context, filter domain.Filter) (int, error)
}

// Options bounds the hybrid path.
type Options struct {
	// MemoryThreshold is the maximum number of matched rows a hybrid scan may
	// materialize. Exceeding it fails with domain.ErrResultSetTooLarge.
	// 0 disables the cap.
	MemoryThreshold int
}

// Paginate runs a list query against src using the resolved pagination
// context. The offset path delegates skip/limit to the store; the hybrid
// path fetches the entire filtered, sorted result set and slices it.
func Paginate[T any](ctx context.Context, src Source[T], filter domain.Filter, sort domain.Sort, pg domain.Pagination, opts Options) (*domain.Page[T], error) {
	if !pg.UseHybrid {
		return paginateOffset(ctx, src, filter, sort, pg)
	}
	return paginateHybrid(ctx, src, filter, sort, pg, opts)
}

func paginateOffset[T any](ctx context.Context, src Source[T], filter domain.Filter, sort domain.Sort, pg domain.Pagination) (*domain.Page[T], error) {
	items, err := src.Find(ctx, filter, sort, pg.Skip, pg.Limit)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	total, err := src.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{
		Items: items,
		Meta: domain.PageMeta{
			Page:       pg.Page,
			Limit:      pg.Limit,
			Total:      total,
			TotalPages: totalPages(total, pg.Limit),
		},
	}, nil
}

func paginateHybrid[T any](ctx context.Context, src Source[T], filter domain.Filter, sort domain.Sort, pg domain.Pagination, opts Options) (*domain.Page[T], error) {
	total, err := src.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	if opts.MemoryThreshold > 0 && total > opts.MemoryThreshold {
		return nil, fmt.Errorf("%w: %d rows matched, threshold is %d", domain.ErrResultSetTooLarge, total, opts.MemoryThreshold)
	}
	all, err := src.FindAll(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	if all == nil {
		all = []T{}
	}

	if pg.All {
		return &domain.Page[T]{
			Items: all,
			Meta: domain.PageMeta{
				Page:       1,
				Limit:      len(all),
				Total:      total,
				TotalPages: 1,
			},
		}, nil
	}

	start := pg.Skip
	if start < 0 || start > len(all) {
		start = len(all)
	}
	end := start + pg.Limit
	if end > len(all) || end < start {
		end = len(all)
	}
	return &domain.Page[T]{
		Items: all[start:end],
		Meta: domain.PageMeta{
			Page:       pg.Page,
			Limit:      pg.Limit,
			Total:      total,
			TotalPages: totalPages(total, pg.Limit),
		},
	}, nil
}

// totalPages is ceiling(total/limit), never below 1.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	n := (total + limit - 1) / limit
	if n < 1 {
		n = 1
	}
	return n
}
