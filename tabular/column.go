package tabular

import (
	"github.com/soffa-projects/go-tabular/schema"
)

// ColumnKind tags the variant of a ColumnType.
type ColumnKind string

const (
	KindNumeric  ColumnKind = "numeric"
	KindText     ColumnKind = "text"
	KindDatetime ColumnKind = "datetime"
	KindRelation ColumnKind = "relation"
	KindSelect   ColumnKind = "select"
)

// RelationTarget names the entity kind a relation column points at.
type RelationTarget string

const (
	RelationUser   RelationTarget = "user"
	RelationObject RelationTarget = "object"
)

// ColumnType is a tagged union over the supported column kinds. Only the
// fields that belong to the Kind are meaningful; use the constructors below.
type ColumnType struct {
	Kind     ColumnKind
	Nullable bool                // numeric, text
	Target   RelationTarget      // relation
	Options  []schema.ValueLabel // select
}

func NumericType(nullable bool) ColumnType {
	return ColumnType{Kind: KindNumeric, Nullable: nullable}
}

func TextType(nullable bool) ColumnType {
	return ColumnType{Kind: KindText, Nullable: nullable}
}

func DatetimeType() ColumnType {
	return ColumnType{Kind: KindDatetime}
}

func RelationType(target RelationTarget) ColumnType {
	return ColumnType{Kind: KindRelation, Target: target}
}

func SelectType(options ...schema.ValueLabel) ColumnType {
	return ColumnType{Kind: KindSelect, Options: options}
}

// LegalOperators returns the operators a filter on a column of this type may
// use. Combinations outside this set are never offered to callers; the
// evaluator still degrades safely if it receives one.
func (t ColumnType) LegalOperators() []FilterOperator {
	var ops []FilterOperator
	switch t.Kind {
	case KindNumeric:
		ops = []FilterOperator{OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual}
		if t.Nullable {
			ops = append(ops, OpIsEmpty, OpIsNotEmpty)
		}
	case KindText:
		ops = []FilterOperator{OpContains, OpEquals, OpNotEquals, OpMatchesRegex}
		if t.Nullable {
			ops = append(ops, OpIsEmpty, OpIsNotEmpty)
		}
	case KindDatetime:
		ops = []FilterOperator{OpEquals, OpNotEquals, OpLessThan, OpGreaterThan}
	case KindRelation, KindSelect:
		ops = []FilterOperator{OpEquals, OpNotEquals}
	}
	return ops
}

func (t ColumnType) DefaultOperator() FilterOperator {
	return OpEquals
}

func (t ColumnType) Allows(op FilterOperator) bool {
	for _, legal := range t.LegalOperators() {
		if legal == op {
			return true
		}
	}
	return false
}

// Column is one entry of a table's column registry.
type Column struct {
	Id    string
	Label string
	Type  ColumnType
}

// Registry is the closed set of columns a table exposes, in display order.
type Registry []Column

func (r Registry) Lookup(columnId string) (Column, bool) {
	for _, col := range r {
		if col.Id == columnId {
			return col, true
		}
	}
	return Column{}, false
}

func (r Registry) Contains(columnId string) bool {
	_, ok := r.Lookup(columnId)
	return ok
}

func (r Registry) Ids() []string {
	ids := make([]string, 0, len(r))
	for _, col := range r {
		ids = append(ids, col.Id)
	}
	return ids
}

// TextColumnIds returns the ids of text columns, the default scope for
// free-text search when the caller names no search columns.
func (r Registry) TextColumnIds() []string {
	var ids []string
	for _, col := range r {
		if col.Type.Kind == KindText {
			ids = append(ids, col.Id)
		}
	}
	return ids
}

// DefaultOperatorFor resolves the default operator of a column, falling back
// to OpEquals for columns not present in the registry.
func (r Registry) DefaultOperatorFor(columnId string) FilterOperator {
	if col, ok := r.Lookup(columnId); ok {
		return col.Type.DefaultOperator()
	}
	return OpEquals
}
