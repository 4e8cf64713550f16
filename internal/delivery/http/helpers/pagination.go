package helpers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"tourbooking/internal/domain"
)

// Pagination query parameter defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10

	limitAll = "all"
)

// PaginationQuery is the parsed, not-yet-validated pagination request.
// Missing or non-numeric page/limit fall back to defaults; out-of-range
// numeric values are preserved for the validator to judge.
type PaginationQuery struct {
	Page  int
	Limit int
	All   bool
}

// ParsePagination reads page and limit from the request query string.
// The literal limit value "all" sets All. Pure function of the request;
// parsing the same query twice yields identical results.
func ParsePagination(r *http.Request, defaultLimit int) PaginationQuery {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	q := PaginationQuery{Page: DefaultPage, Limit: defaultLimit}
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			q.Page = v
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if s == limitAll {
			q.All = true
			q.Limit = 0
		} else if v, err := strconv.Atoi(s); err == nil {
			q.Limit = v
		}
	}
	return q
}

// ValidatePagination returns the list of validation errors for q; empty means
// valid. limit=all is always valid. With rejectAboveMax, a numeric limit above
// maxLimit is an error; otherwise oversized limits are legal and later served
// by the hybrid path.
func ValidatePagination(q PaginationQuery, maxLimit int, rejectAboveMax bool) []string {
	var errs []string
	if q.Page < 1 {
		errs = append(errs, "Page must be >= 1")
	}
	if !q.All {
		if q.Limit < 1 {
			errs = append(errs, "Limit must be >= 1")
		} else if rejectAboveMax && q.Limit > maxLimit {
			errs = append(errs, fmt.Sprintf("Limit must be <= %d", maxLimit))
		}
	}
	return errs
}

// ResolvePagination turns a valid query into the per-request pagination
// context. A numeric limit above maxLimit, or limit=all, selects the hybrid
// in-memory path.
func ResolvePagination(q PaginationQuery, maxLimit int) domain.Pagination {
	if q.All {
		return domain.Pagination{Page: 1, All: true, UseHybrid: true}
	}
	skip := (q.Page - 1) * q.Limit
	if skip < 0 || (q.Page > 1 && skip/(q.Page-1) != q.Limit) {
		// page*limit overflowed int; saturate so the query yields an empty page
		skip = math.MaxInt
	}
	return domain.Pagination{
		Page:      q.Page,
		Limit:     q.Limit,
		Skip:      skip,
		UseHybrid: q.Limit > maxLimit,
	}
}

// DefaultPagination is the safe fallback context used when validation fails on
// a route that tolerates bad input, or when the middleware fails open.
func DefaultPagination(defaultLimit int) domain.Pagination {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	return domain.Pagination{Page: DefaultPage, Limit: defaultLimit}
}
