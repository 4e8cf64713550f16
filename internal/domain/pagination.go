package domain

// Sort directions accepted on list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Pagination is the resolved per-request pagination context. It is built once
// by the pagination middleware and read by handlers; it is never persisted.
type Pagination struct {
	Page      int
	Limit     int  // ignored when All is true
	All       bool // client asked for every matching record (limit=all)
	Skip      int  // (Page-1)*Limit; 0 when All
	UseHybrid bool // serve via in-memory scan instead of store-level offset
}

// Sort names the field and direction a list query is ordered by.
type Sort struct {
	Field string
	Order string // SortAsc or SortDesc
}

// Filter holds allow-listed equality filters, keyed by API field name.
// Keys outside a route's allow-list never reach this map.
type Filter map[string]string

// PageMeta is the pagination block of a paginated list response.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of a list result together with its pagination metadata.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"pagination"`
}
