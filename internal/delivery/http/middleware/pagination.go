package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"tourbooking/config"
	"tourbooking/internal/delivery/http/helpers"
	"tourbooking/internal/domain"
)

type contextKey string

const (
	paginationKey contextKey = "pagination"
	sortKey       contextKey = "sort"
	filterKey     contextKey = "filter"
)

// SetPagination returns a context with the resolved pagination context set.
func SetPagination(ctx context.Context, pg domain.Pagination) context.Context {
	return context.WithValue(ctx, paginationKey, pg)
}

// PaginationFromContext returns the resolved pagination context, if present.
func PaginationFromContext(ctx context.Context) (domain.Pagination, bool) {
	pg, ok := ctx.Value(paginationKey).(domain.Pagination)
	return pg, ok
}

// SetSort returns a context with the sort context set.
func SetSort(ctx context.Context, sort domain.Sort) context.Context {
	return context.WithValue(ctx, sortKey, sort)
}

// SortFromContext returns the sort context, if present.
func SortFromContext(ctx context.Context) (domain.Sort, bool) {
	sort, ok := ctx.Value(sortKey).(domain.Sort)
	return sort, ok
}

// SetFilter returns a context with the allow-listed filters set.
func SetFilter(ctx context.Context, filter domain.Filter) context.Context {
	return context.WithValue(ctx, filterKey, filter)
}

// FilterFromContext returns the allow-listed filters, if present.
func FilterFromContext(ctx context.Context) (domain.Filter, bool) {
	filter, ok := ctx.Value(filterKey).(domain.Filter)
	return filter, ok
}

// PaginationOptions configures the pagination middleware for one route.
type PaginationOptions struct {
	// Required controls what happens on invalid page/limit input: true answers
	// 400, false silently substitutes safe defaults and continues.
	Required bool
	// FilterFields is the allow-list of filterable query keys for the route.
	FilterFields []string
	// SortFields is the allow-list of sortable field names for the route.
	SortFields []string
}

// Pagination returns a wrapper that parses and validates page/limit/sort/filter
// query parameters and sets the resolved contexts on the request. Unexpected
// internal failures never surface to the client: the middleware fails open to
// defaults, so a pagination bug cannot take down a list endpoint.
func Pagination(cfg config.Pagination, logger *slog.Logger, opts PaginationOptions) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			pg, sort, filter, handled := resolveRequest(cfg, logger, opts, w, r)
			if handled {
				return
			}
			ctx := SetPagination(r.Context(), pg)
			ctx = SetSort(ctx, sort)
			ctx = SetFilter(ctx, filter)
			next(w, r.WithContext(ctx))
		}
	}
}

// resolveRequest produces the pagination, sort, and filter contexts for r.
// handled is true when a 400 was already written and the handler must not run.
func resolveRequest(cfg config.Pagination, logger *slog.Logger, opts PaginationOptions, w http.ResponseWriter, r *http.Request) (pg domain.Pagination, sort domain.Sort, filter domain.Filter, handled bool) {
	defer func() {
		if v := recover(); v != nil {
			logger.ErrorContext(r.Context(), "pagination resolution panicked, using defaults",
				"path", r.URL.Path, "panic", v)
			pg = helpers.DefaultPagination(cfg.DefaultLimit)
			sort = domain.Sort{Field: cfg.DefaultSortBy, Order: cfg.DefaultSortOrder}
			filter = domain.Filter{}
			handled = false
		}
	}()

	q := helpers.ParsePagination(r, cfg.DefaultLimit)
	errs := helpers.ValidatePagination(q, cfg.MaxLimit, cfg.Policy == config.PolicyReject)
	switch {
	case len(errs) == 0:
		pg = helpers.ResolvePagination(q, cfg.MaxLimit)
	case opts.Required:
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "Invalid pagination parameters", errs)
		return pg, sort, filter, true
	default:
		logger.DebugContext(r.Context(), "invalid pagination parameters, using defaults",
			"path", r.URL.Path, "errors", errs)
		pg = helpers.DefaultPagination(cfg.DefaultLimit)
	}

	def := domain.Sort{Field: cfg.DefaultSortBy, Order: cfg.DefaultSortOrder}
	var droppedSort, droppedFilter []string
	sort, droppedSort = helpers.ParseSort(r, opts.SortFields, def)
	filter, droppedFilter = helpers.ParseFilters(r, opts.FilterFields)
	if len(droppedSort) > 0 || len(droppedFilter) > 0 {
		logger.DebugContext(r.Context(), "dropped query keys outside allow-list",
			"path", r.URL.Path, "sort", droppedSort, "filter", droppedFilter)
	}
	return pg, sort, filter, false
}
