package tabular

// PageParams is one page request against a tabular data source: paging,
// free-text search, sort precedence and the active filters. PageIndex is
// zero-based; the wire format's page number is one-based and the serializer
// owns that translation.
type PageParams struct {
	PageIndex     int
	PageSize      int
	Search        string
	SearchColumns []string
	Sort          []ColumnSort
	Filters       []ColumnFilter
}

// Page is one page of results. Total is the count across all pages, not
// len(Items).
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
