package schema

// ValueLabel is one option of a select column.
type ValueLabel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ErrorResponse struct {
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// ListQuery is the query-string contract of a list endpoint. Page numbers
// are one-based on the wire; the core model is zero-based and the
// translation is owned by the serializer.
type ListQuery struct {
	Page          int    `query:"page" validate:"omitempty,min=1"`
	PageSize      int    `query:"page_size" validate:"omitempty,min=1"`
	Search        string `query:"search"`
	Sort          string `query:"sort"`
	SearchColumns string `query:"search_columns"`
	Filters       string `query:"filters"`
}
