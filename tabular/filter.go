package tabular

// ColumnFilter is a single column-typed constraint. Value is a scalar, or,
// for equals/notEquals on relation and select columns, a comma-joined id set
// with membership semantics. DateFrom/DateTo are only used by OpDateRange.
type ColumnFilter struct {
	ColumnId string         `json:"columnId"`
	Operator FilterOperator `json:"operator"`
	Value    string         `json:"value"`
	DateFrom string         `json:"dateFrom,omitempty"`
	DateTo   string         `json:"dateTo,omitempty"`
}

// FilterPatch carries a partial update; nil fields are left untouched.
type FilterPatch struct {
	ColumnId *string
	Operator *FilterOperator
	Value    *string
	DateFrom *string
	DateTo   *string
}

// FilterSet is the caller-owned filter collection of one table. Mutations
// are synchronous and not safe for concurrent use; the owning UI is expected
// to drive them from a single event loop.
type FilterSet struct {
	registry Registry
	items    []ColumnFilter
}

func NewFilterSet(registry Registry) *FilterSet {
	return &FilterSet{registry: registry}
}

func (s *FilterSet) Items() []ColumnFilter {
	return s.items
}

func (s *FilterSet) Len() int {
	return len(s.items)
}

// Add appends an empty filter: no column chosen, default operator, no value.
func (s *FilterSet) Add() {
	s.items = append(s.items, ColumnFilter{Operator: OpEquals})
}

func (s *FilterSet) Remove(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
}

func (s *FilterSet) Clear() {
	s.items = nil
}

// Update merges a patch into the filter at index. Changing the column resets
// the operator to the new column's default and clears all values, so a stale
// value of a different type never leaks into the new column's evaluation.
func (s *FilterSet) Update(index int, patch FilterPatch) {
	if index < 0 || index >= len(s.items) {
		return
	}
	f := &s.items[index]
	if patch.ColumnId != nil && *patch.ColumnId != f.ColumnId {
		f.ColumnId = *patch.ColumnId
		f.Operator = s.registry.DefaultOperatorFor(f.ColumnId)
		f.Value = ""
		f.DateFrom = ""
		f.DateTo = ""
	}
	if patch.Operator != nil {
		f.Operator = *patch.Operator
	}
	if patch.Value != nil {
		f.Value = *patch.Value
	}
	if patch.DateFrom != nil {
		f.DateFrom = *patch.DateFrom
	}
	if patch.DateTo != nil {
		f.DateTo = *patch.DateTo
	}
}

// Prune drops filters whose column is no longer part of the registry.
// Filters with no column chosen yet are kept. Silently dropping (rather than
// keeping-but-ignoring) was picked so the filter list shown to the user
// never references columns the view no longer has.
func (s *FilterSet) Prune() {
	kept := s.items[:0]
	for _, f := range s.items {
		if f.ColumnId == "" || s.registry.Contains(f.ColumnId) {
			kept = append(kept, f)
		}
	}
	s.items = kept
}

// SetRegistry swaps the active column registry and prunes accordingly, for
// view-configuration changes.
func (s *FilterSet) SetRegistry(registry Registry) {
	s.registry = registry
	s.Prune()
}
