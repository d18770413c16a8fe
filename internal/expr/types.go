package expr

// Expression represents a directory search predicate.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the wire codec.
//
// Expression types:
//   - MatchExpression: field/value comparison with a match type and flags
//   - ExistsExpression: field presence check
//   - BooleanExpression: boolean field check
//   - CompoundExpression: AND/OR combination of sub-expressions
type Expression interface {
	expressionNode() // Marker method - seals interface to this package
}

// FieldName is the canonical identifier of a directory record field.
//
// Wire names are backend-specific and resolved by a codec.Resolver; a tree
// only ever holds resolved FieldName values, never raw wire strings.
type FieldName string

// Name returns the canonical field name string.
func (f FieldName) Name() string { return string(f) }

// MatchExpression compares a record field against a value.
//
// Semantics:
//
//	<field> <matchType> <value>  (modified by <flags>)
//
// Example:
//
//	MatchExpression{
//	  FieldName:  "emailAddresses",
//	  FieldValue: "@example.com",
//	  MatchType:  MatchEndsWith,
//	  Flags:      FlagCaseInsensitive,
//	}
//
// FieldValue is always a string; the codec stringifies non-string wire
// values before constructing a MatchExpression.
type MatchExpression struct {
	FieldName  FieldName
	FieldValue string
	MatchType  MatchType
	Flags      MatchFlags
}

func (MatchExpression) expressionNode() {}

// ExistsExpression is true for records that have any value for a field.
type ExistsExpression struct {
	FieldName FieldName
}

func (ExistsExpression) expressionNode() {}

// BooleanExpression is true for records whose boolean field is set.
type BooleanExpression struct {
	FieldName FieldName
}

func (BooleanExpression) expressionNode() {}

// CompoundExpression combines sub-expressions with a logical operand.
//
// Trees are acyclic by construction: children are owned values with no
// back-references, so traversals need no cycle detection.
//
// Well-formed trees have at least one sub-expression. The codec accepts
// zero-child compounds on decode; Validate reports them as warnings.
type CompoundExpression struct {
	Expressions []Expression
	Op          Operand
}

func (CompoundExpression) expressionNode() {}
