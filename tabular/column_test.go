package tabular

import (
	"testing"

	"github.com/soffa-projects/go-tabular/schema"
	"github.com/stretchr/testify/assert"
)

func testRegistry() Registry {
	return Registry{
		{Id: "subject", Label: "Subject", Type: TextType(false)},
		{Id: "description", Label: "Description", Type: TextType(true)},
		{Id: "priority", Label: "Priority", Type: NumericType(true)},
		{Id: "createdAt", Label: "Created", Type: DatetimeType()},
		{Id: "assignee", Label: "Assignee", Type: RelationType(RelationUser)},
		{Id: "status", Label: "Status", Type: SelectType(
			schema.ValueLabel{Value: "open", Label: "Open"},
			schema.ValueLabel{Value: "closed", Label: "Closed"},
		)},
	}
}

func TestLegalOperatorsPerKind(t *testing.T) {
	assert.ElementsMatch(t,
		[]FilterOperator{OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual},
		NumericType(false).LegalOperators())
	assert.ElementsMatch(t,
		[]FilterOperator{OpContains, OpEquals, OpNotEquals, OpMatchesRegex},
		TextType(false).LegalOperators())
	assert.ElementsMatch(t,
		[]FilterOperator{OpEquals, OpNotEquals, OpLessThan, OpGreaterThan},
		DatetimeType().LegalOperators())
	assert.ElementsMatch(t,
		[]FilterOperator{OpEquals, OpNotEquals},
		RelationType(RelationObject).LegalOperators())
	assert.ElementsMatch(t,
		[]FilterOperator{OpEquals, OpNotEquals},
		SelectType().LegalOperators())
}

func TestEmptinessOperatorsRequireNullable(t *testing.T) {
	for _, typ := range []ColumnType{NumericType(false), TextType(false), DatetimeType(), RelationType(RelationUser), SelectType()} {
		assert.False(t, typ.Allows(OpIsEmpty), "kind %s", typ.Kind)
		assert.False(t, typ.Allows(OpIsNotEmpty), "kind %s", typ.Kind)
	}
	assert.True(t, NumericType(true).Allows(OpIsEmpty))
	assert.True(t, TextType(true).Allows(OpIsNotEmpty))
}

func TestDateRangeIsNotReachable(t *testing.T) {
	// the operator exists in the algebra but no kind exposes it
	for _, typ := range []ColumnType{NumericType(true), TextType(true), DatetimeType(), RelationType(RelationUser), SelectType()} {
		assert.False(t, typ.Allows(OpDateRange), "kind %s", typ.Kind)
	}
}

func TestDefaultOperatorIsAlwaysEquals(t *testing.T) {
	for _, typ := range []ColumnType{NumericType(false), TextType(false), DatetimeType(), RelationType(RelationUser), SelectType()} {
		assert.Equal(t, OpEquals, typ.DefaultOperator())
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := testRegistry()
	col, ok := registry.Lookup("priority")
	assert.True(t, ok)
	assert.Equal(t, KindNumeric, col.Type.Kind)

	_, ok = registry.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, OpEquals, registry.DefaultOperatorFor("nope"))
}

func TestTextColumnIds(t *testing.T) {
	assert.Equal(t, []string{"subject", "description"}, testRegistry().TextColumnIds())
}

func TestOperatorNeedsValue(t *testing.T) {
	assert.False(t, OpIsEmpty.NeedsValue())
	assert.False(t, OpIsNotEmpty.NeedsValue())
	assert.True(t, OpEquals.NeedsValue())
	assert.True(t, OpDateRange.NeedsValue())
}

func TestDatetimeValueOperators(t *testing.T) {
	assert.True(t, OpEquals.IsDatetimeValue())
	assert.True(t, OpNotEquals.IsDatetimeValue())
	assert.True(t, OpLessThan.IsDatetimeValue())
	assert.True(t, OpGreaterThan.IsDatetimeValue())
	assert.False(t, OpDateRange.IsDatetimeValue())
	assert.True(t, OpDateRange.IsDateRange())
	assert.False(t, OpContains.IsDatetimeValue())
}
