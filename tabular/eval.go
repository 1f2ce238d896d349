package tabular

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/soffa-projects/go-tabular/util/h"
	"github.com/spf13/cast"
)

// Getter resolves a row's raw value for a column id. Rows stay opaque to the
// core; this is the only thing it needs from the data layer.
type Getter[T any] func(row T, columnId string) any

// MapGetter is the Getter for map-shaped rows.
func MapGetter(row map[string]any, columnId string) any {
	return row[columnId]
}

// Matches decides whether one cell value satisfies one filter. Filter state
// is user-editable, so malformed input never panics or errors: depending on
// the case it degrades to "no constraint" (half-built filters must not hide
// rows) or to "match nothing" (a broken regex selects no rows).
func Matches(cell any, f ColumnFilter) bool {
	switch f.Operator {
	case OpIsEmpty:
		return isEmptyCell(cell)
	case OpIsNotEmpty:
		return !isEmptyCell(cell)
	case OpDateRange:
		return matchDateRange(cell, f.DateFrom, f.DateTo)
	}

	// an un-filled filter imposes no constraint
	if f.Value == "" {
		return true
	}

	switch f.Operator {
	case OpContains:
		return strings.Contains(strings.ToLower(cast.ToString(cell)), strings.ToLower(f.Value))
	case OpMatchesRegex:
		re, err := regexp.Compile("(?i)" + f.Value)
		if err != nil {
			log.Debugf("invalid filter pattern %q: %v", f.Value, err)
			return false
		}
		return re.MatchString(cast.ToString(cell))
	case OpEquals:
		return matchEquals(cell, f.Value)
	case OpNotEquals:
		return !matchEquals(cell, f.Value)
	case OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual:
		return matchCompare(cell, f.Operator, f.Value)
	}
	// unknown or illegal operator: no constraint
	return true
}

// MatchesAll applies AND semantics across a filter collection.
func MatchesAll[T any](row T, get Getter[T], filters []ColumnFilter) bool {
	for _, f := range filters {
		if !Matches(get(row, f.ColumnId), f) {
			return false
		}
	}
	return true
}

func isEmptyCell(cell any) bool {
	if cell == nil {
		return true
	}
	return cast.ToString(cell) == ""
}

// matchEquals implements the value grammar shared by equals and notEquals: a
// comma-joined value is a membership test, a single ISO-day-shaped token
// compares by calendar day, anything else by case-insensitive equality.
func matchEquals(cell any, value string) bool {
	cellStr := cast.ToString(cell)
	tokens := h.SplitCsv(value)
	if len(tokens) == 0 {
		// separators only, no usable token: no constraint
		return true
	}
	if len(tokens) > 1 {
		return h.ContainsFold(tokens, cellStr)
	}
	token := tokens[0]
	if h.LooksLikeDate(token) {
		if cellTime, ok := h.ParseDateTime(cellStr); ok {
			if tokenDay, ok := h.ParseDay(token); ok {
				return h.SameDay(cellTime, tokenDay)
			}
		}
	}
	return strings.EqualFold(cellStr, token)
}

func matchDateRange(cell any, dateFrom, dateTo string) bool {
	if dateFrom == "" && dateTo == "" {
		return true
	}
	cellTime, ok := h.ParseDateTime(cast.ToString(cell))
	if !ok {
		return false
	}
	if dateFrom != "" {
		if from, ok := h.ParseDay(dateFrom); ok && cellTime.Before(from) {
			return false
		}
	}
	if dateTo != "" {
		if to, ok := h.ParseDay(dateTo); ok && cellTime.After(h.EndOfDay(to)) {
			return false
		}
	}
	return true
}

func matchCompare(cell any, op FilterOperator, value string) bool {
	cellStr := cast.ToString(cell)

	// lessThan/greaterThan against an ISO-date-shaped value compare instants
	if (op == OpLessThan || op == OpGreaterThan) && h.LooksLikeDate(value) {
		if cellTime, ok := h.ParseDateTime(cellStr); ok {
			if valueTime, ok := h.ParseDateTime(value); ok {
				if op == OpLessThan {
					return cellTime.Before(valueTime)
				}
				return cellTime.After(valueTime)
			}
		}
	}

	a, errA := cast.ToFloat64E(cellStr)
	b, errB := cast.ToFloat64E(value)
	if errA != nil || errB != nil {
		// not comparable: no constraint rather than an error
		return true
	}
	switch op {
	case OpGreaterThan:
		return a > b
	case OpLessThan:
		return a < b
	case OpGreaterOrEqual:
		return a >= b
	case OpLessOrEqual:
		return a <= b
	}
	return true
}
