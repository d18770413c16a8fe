// Package expr defines the in-memory model for directory query expressions.
//
// An expression tree describes a search predicate over directory records:
// field comparisons (MatchExpression), field presence checks
// (ExistsExpression), boolean field checks (BooleanExpression), and logical
// AND/OR combinations (CompoundExpression).
//
// This package contains type definitions and name lookups only. All other
// internal packages import expr; expr imports nothing internal. This keeps
// the expression model the foundational layer with no circular dependencies.
//
// Every enumeration here carries a stable wire name per value and a total
// lookup-by-name function. The wire names are a compatibility contract with
// the JSON codec in internal/codec and must not change.
package expr
