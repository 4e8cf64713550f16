package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourbooking/internal/domain"
)

var defaultSort = domain.Sort{Field: "createdAt", Order: domain.SortDesc}

func TestParseSort(t *testing.T) {
	allowed := []string{"createdAt", "price"}

	tests := []struct {
		name        string
		query       string
		wantSort    domain.Sort
		wantDropped []string
	}{
		{
			name:     "no sort params uses default",
			query:    "",
			wantSort: defaultSort,
		},
		{
			name:     "allow-listed sortBy",
			query:    "sortBy=price&sortOrder=asc",
			wantSort: domain.Sort{Field: "price", Order: domain.SortAsc},
		},
		{
			name:     "sort and order aliases",
			query:    "sort=price&order=asc",
			wantSort: domain.Sort{Field: "price", Order: domain.SortAsc},
		},
		{
			name:        "unknown sort field dropped, default applied",
			query:       "sortBy=unknownField",
			wantSort:    defaultSort,
			wantDropped: []string{"unknownField"},
		},
		{
			name:     "garbage order becomes desc",
			query:    "sortBy=price&sortOrder=sideways",
			wantSort: domain.Sort{Field: "price", Order: domain.SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sort, dropped := ParseSort(newListRequest(t, tt.query), allowed, defaultSort)
			assert.Equal(t, tt.wantSort, sort)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestParseFilters(t *testing.T) {
	allowed := []string{"status", "paymentStatus"}

	tests := []struct {
		name        string
		query       string
		wantFilter  domain.Filter
		wantDropped []string
	}{
		{
			name:       "no filters",
			query:      "",
			wantFilter: domain.Filter{},
		},
		{
			name:       "allow-listed keys collected",
			query:      "status=confirmed&paymentStatus=paid",
			wantFilter: domain.Filter{"status": "confirmed", "paymentStatus": "paid"},
		},
		{
			name:        "unknown key dropped",
			query:       "status=confirmed&role=admin",
			wantFilter:  domain.Filter{"status": "confirmed"},
			wantDropped: []string{"role"},
		},
		{
			name:       "reserved pagination keys are not filters",
			query:      "page=2&limit=10&sortBy=createdAt&status=pending",
			wantFilter: domain.Filter{"status": "pending"},
		},
		{
			name:       "empty values ignored",
			query:      "status=",
			wantFilter: domain.Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, dropped := ParseFilters(newListRequest(t, tt.query), allowed)
			assert.Equal(t, tt.wantFilter, filter)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}
