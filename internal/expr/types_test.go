package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchExpression_Construction(t *testing.T) {
	match := MatchExpression{
		FieldName:  "emailAddresses",
		FieldValue: "@example.com",
		MatchType:  MatchEndsWith,
		Flags:      FlagCaseInsensitive,
	}

	assert.Equal(t, "emailAddresses", match.FieldName.Name())
	assert.Equal(t, "@example.com", match.FieldValue)
	assert.Equal(t, MatchEndsWith, match.MatchType)
	assert.Equal(t, FlagCaseInsensitive, match.Flags)
}

func TestExpression_SealedInterface(t *testing.T) {
	// Only the four variants implement Expression (sealed interface)
	expressions := []Expression{
		MatchExpression{FieldName: "uid", FieldValue: "wsanchez"},
		ExistsExpression{FieldName: "uid"},
		BooleanExpression{FieldName: "suspended"},
		CompoundExpression{
			Expressions: []Expression{ExistsExpression{FieldName: "uid"}},
			Op:          OperandAND,
		},
	}

	for _, e := range expressions {
		// Type switch is exhaustive - compiler knows all types
		switch e.(type) {
		case MatchExpression:
			// OK
		case ExistsExpression:
			// OK
		case BooleanExpression:
			// OK
		case CompoundExpression:
			// OK
		default:
			t.Fatal("unexpected expression type")
		}
	}
}

func TestCompoundExpression_Nesting(t *testing.T) {
	inner := CompoundExpression{
		Expressions: []Expression{
			MatchExpression{FieldName: "shortNames", FieldValue: "sagen"},
			ExistsExpression{FieldName: "emailAddresses"},
		},
		Op: OperandOR,
	}

	outer := CompoundExpression{
		Expressions: []Expression{
			inner,
			BooleanExpression{FieldName: "suspended"},
		},
		Op: OperandAND,
	}

	assert.Len(t, outer.Expressions, 2)
	assert.IsType(t, CompoundExpression{}, outer.Expressions[0])
	assert.IsType(t, BooleanExpression{}, outer.Expressions[1])
}

func TestExpression_PointerVariants(t *testing.T) {
	// Both value and pointer forms satisfy the sealed interface
	var e Expression = &MatchExpression{FieldName: "uid", FieldValue: "x"}
	assert.NotNil(t, e)

	switch e.(type) {
	case *MatchExpression:
		// Expected - pointer type
	case MatchExpression:
		t.Fatal("expected pointer type, got value type")
	}
}

func TestExpression_MarkerMethodExists(t *testing.T) {
	MatchExpression{}.expressionNode()
	ExistsExpression{}.expressionNode()
	BooleanExpression{}.expressionNode()
	CompoundExpression{}.expressionNode()
}
