package tabular

import (
	"sort"
	"strings"

	"github.com/soffa-projects/go-tabular/util/h"
	"github.com/spf13/cast"
)

// View evaluates page requests against an in-memory row set: filter, search,
// multi-column sort, then slice. It is used directly in local mode and by
// the in-memory server dataset, which is what keeps the two evaluation paths
// logically identical.
type View[T any] struct {
	registry Registry
	get      Getter[T]
}

func NewView[T any](registry Registry, get Getter[T]) *View[T] {
	return &View[T]{registry: registry, get: get}
}

// Apply computes one page. The input slice is never mutated.
func (v *View[T]) Apply(rows []T, params PageParams) Page[T] {
	searchColumns := params.SearchColumns
	if len(searchColumns) == 0 {
		searchColumns = v.registry.TextColumnIds()
	}

	var filtered []T
	for _, row := range rows {
		if !MatchesAll(row, v.get, params.Filters) {
			continue
		}
		if !v.matchesSearch(row, params.Search, searchColumns) {
			continue
		}
		filtered = append(filtered, row)
	}

	v.sortRows(filtered, params.Sort)

	total := len(filtered)
	items := filtered
	if params.PageSize > 0 {
		start := params.PageIndex * params.PageSize
		if start < 0 || start >= total {
			items = nil
		} else {
			end := start + params.PageSize
			if end > total {
				end = total
			}
			items = filtered[start:end]
		}
	}
	return Page[T]{Items: items, Total: total}
}

func (v *View[T]) matchesSearch(row T, search string, columns []string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, columnId := range columns {
		value := strings.ToLower(cast.ToString(v.get(row, columnId)))
		if strings.Contains(value, needle) {
			return true
		}
	}
	return false
}

func (v *View[T]) sortRows(rows []T, sorts []ColumnSort) {
	if len(sorts) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, s := range sorts {
			c := CompareValues(v.get(rows[i], s.ColumnId), v.get(rows[j], s.ColumnId))
			if c == 0 {
				continue
			}
			if s.Direction == SortDesc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// CompareValues orders two opaque cell values: as instants when both parse
// as dates, as floats when both parse as numbers, otherwise as
// case-insensitive strings. Nils sort first.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}
	as := cast.ToString(a)
	bs := cast.ToString(b)
	if at, ok := h.ParseDateTime(as); ok {
		if bt, ok := h.ParseDateTime(bs); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	af, errA := cast.ToFloat64E(as)
	bf, errB := cast.ToFloat64E(bs)
	if errA == nil && errB == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
}
