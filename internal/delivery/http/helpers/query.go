package helpers

import (
	"net/http"
	"slices"

	"tourbooking/internal/domain"
)

// reservedParams are query keys consumed by the pagination subsystem itself;
// they are never treated as filter candidates.
var reservedParams = []string{"page", "limit", "sortBy", "sort", "sortOrder", "order"}

// ParseSort reads sortBy/sort and sortOrder/order from the query string and
// checks the field against the route's allow-list. A field outside the
// allow-list is dropped and the default applied; it is returned in dropped so
// the caller can log it. Order values other than asc or desc become desc.
func ParseSort(r *http.Request, allowed []string, def domain.Sort) (sort domain.Sort, dropped []string) {
	q := r.URL.Query()
	sort = def

	field := q.Get("sortBy")
	if field == "" {
		field = q.Get("sort")
	}
	if field != "" {
		if slices.Contains(allowed, field) {
			sort.Field = field
		} else {
			dropped = append(dropped, field)
		}
	}

	order := q.Get("sortOrder")
	if order == "" {
		order = q.Get("order")
	}
	switch order {
	case domain.SortAsc, domain.SortDesc:
		sort.Order = order
	case "":
		// keep default
	default:
		sort.Order = domain.SortDesc
	}
	return sort, dropped
}

// ParseFilters collects allow-listed filter parameters from the query string.
// Keys outside the allow-list (and not reserved) are dropped from the filter
// but reported in dropped for diagnostics.
func ParseFilters(r *http.Request, allowed []string) (filter domain.Filter, dropped []string) {
	filter = domain.Filter{}
	for key, values := range r.URL.Query() {
		if slices.Contains(reservedParams, key) {
			continue
		}
		if !slices.Contains(allowed, key) {
			dropped = append(dropped, key)
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}
	return filter, dropped
}
