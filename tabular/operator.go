package tabular

// FilterOperator is the closed set of filter operators shared by the local
// evaluator and the server query serializer. Both sides must interpret a
// given operator the same way, so new operators are only added here.
type FilterOperator string

const (
	OpContains       FilterOperator = "contains"
	OpEquals         FilterOperator = "equals"
	OpNotEquals      FilterOperator = "notEquals"
	OpGreaterThan    FilterOperator = "greaterThan"
	OpLessThan       FilterOperator = "lessThan"
	OpGreaterOrEqual FilterOperator = "greaterOrEqual"
	OpLessOrEqual    FilterOperator = "lessOrEqual"
	OpMatchesRegex   FilterOperator = "matchesRegex"
	OpDateRange      FilterOperator = "dateRange"
	OpIsEmpty        FilterOperator = "isEmpty"
	OpIsNotEmpty     FilterOperator = "isNotEmpty"
)

// NeedsValue reports whether the operator requires a value to be set before
// it imposes any constraint.
func (op FilterOperator) NeedsValue() bool {
	return op != OpIsEmpty && op != OpIsNotEmpty
}

func (op FilterOperator) IsDateRange() bool {
	return op == OpDateRange
}

// IsDatetimeValue reports whether the operator takes a single datetime value
// when applied to a datetime column. OpDateRange is carried by the algebra
// but no column kind exposes it, so it is deliberately not part of this set.
func (op FilterOperator) IsDatetimeValue() bool {
	switch op {
	case OpEquals, OpNotEquals, OpLessThan, OpGreaterThan:
		return true
	default:
		return false
	}
}
