// Package codec converts directory query expressions to and from their
// JSON wire representation.
//
// Every wire node is a JSON object carrying a "type" discriminator equal to
// one of CompoundExpression, MatchExpression, ExistsExpression, or
// BooleanExpression; the discriminator is the sole dispatch key on both
// sides.
//
// Wire format per node kind:
//
//	MatchExpression:   {"type":"MatchExpression","field":<str>,"value":<any>,"match":<str>,"flags":<str>}
//	ExistsExpression:  {"type":"ExistsExpression","field":<str>}
//	BooleanExpression: {"type":"BooleanExpression","field":<str>}
//	CompoundExpression:{"type":"CompoundExpression","operand":<str>,"expressions":[<node>,...]}
//
// Text form is compact UTF-8 JSON with no padding around separators.
//
// The codec is stateless: every call is an independent pure transformation,
// safe to run from concurrent goroutines with no coordination. A call either
// fully succeeds or fails with a coded error; there are no partial results.
package codec
