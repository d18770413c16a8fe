package codec

import (
	"github.com/dirquery/dirquery/internal/expr"
	"github.com/dirquery/dirquery/internal/jval"
)

// Resolver maps a wire field-name string to the backend's canonical field
// identifier. Lookups are synchronous and side-effect free; unknown names
// are an error, which the decoder propagates verbatim.
type Resolver interface {
	LookupFieldName(name string) (expr.FieldName, error)
}

// Decode reconstructs an expression tree from its JSON value form.
//
// The value must be a JSON object carrying a "type" discriminator; dispatch
// is on that string alone. The resolver is threaded explicitly through every
// recursive call, so nested compound children resolve against the same
// backend as the root.
func Decode(r Resolver, v jval.Value) (expr.Expression, error) {
	obj, ok := v.(*jval.Object)
	if !ok {
		return nil, newTypeMismatch("JSON expression must be an object")
	}

	typeVal, ok := obj.Get("type")
	if !ok {
		return nil, newMissingField("", "type")
	}

	switch typeName := jval.Stringify(typeVal); typeName {
	case "CompoundExpression":
		return decodeCompound(r, obj)
	case "MatchExpression":
		return decodeMatch(r, obj)
	case "ExistsExpression":
		field, err := decodeFieldName(r, obj, "exists")
		if err != nil {
			return nil, err
		}
		return expr.ExistsExpression{FieldName: field}, nil
	case "BooleanExpression":
		field, err := decodeFieldName(r, obj, "boolean")
		if err != nil {
			return nil, err
		}
		return expr.BooleanExpression{FieldName: field}, nil
	default:
		return nil, newUnknownExpressionType(typeName)
	}
}

// DecodeText parses text as JSON and reconstructs the expression tree.
func DecodeText(r Resolver, text string) (expr.Expression, error) {
	v, err := jval.Parse([]byte(text))
	if err != nil {
		return nil, newMalformedJSON(err)
	}
	return Decode(r, v)
}

func decodeMatch(r Resolver, obj *jval.Object) (expr.Expression, error) {
	// Required keys, checked in fixed order: field before value.
	fieldVal, ok := obj.Get("field")
	if !ok {
		return nil, newMissingField("match", "field")
	}
	valueVal, ok := obj.Get("value")
	if !ok {
		return nil, newMissingField("match", "value")
	}

	fieldName, err := r.LookupFieldName(jval.Stringify(fieldVal))
	if err != nil {
		return nil, err
	}

	// Absents default to the wire spellings for "plain equality".
	matchName := "equals"
	if v, ok := obj.Get("match"); ok {
		matchName = jval.Stringify(v)
	}
	matchType, err := expr.LookupMatchType(matchName)
	if err != nil {
		return nil, newUnknownMatchType(matchName)
	}

	flagsName := "{}"
	if v, ok := obj.Get("flags"); ok {
		flagsName = jval.Stringify(v)
	}
	flags, err := parseFlags(flagsName)
	if err != nil {
		return nil, err
	}

	return expr.MatchExpression{
		FieldName:  fieldName,
		FieldValue: jval.Stringify(valueVal),
		MatchType:  matchType,
		Flags:      flags,
	}, nil
}

// decodeFieldName handles the shared "field"-only shape of exists and
// boolean nodes. kind names the node kind in missing-key messages.
func decodeFieldName(r Resolver, obj *jval.Object, kind string) (expr.FieldName, error) {
	fieldVal, ok := obj.Get("field")
	if !ok {
		return "", newMissingField(kind, "field")
	}
	return r.LookupFieldName(jval.Stringify(fieldVal))
}

func decodeCompound(r Resolver, obj *jval.Object) (expr.Expression, error) {
	// Required keys, checked in fixed order: expressions before operand.
	exprsVal, ok := obj.Get("expressions")
	if !ok {
		return nil, newMissingField("compound", "expressions")
	}
	operandVal, ok := obj.Get("operand")
	if !ok {
		return nil, newMissingField("compound", "operand")
	}

	arr, ok := exprsVal.(jval.Array)
	if !ok {
		return nil, newTypeMismatch(`"expressions" must be an array`)
	}

	// An empty array decodes to a compound with zero children; callers who
	// want to reject that run expr.Validate on the result.
	children := make([]expr.Expression, 0, len(arr))
	for _, item := range arr {
		child, err := Decode(r, item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	op, err := expr.LookupOperand(jval.Stringify(operandVal))
	if err != nil {
		return nil, newUnknownOperand(jval.Stringify(operandVal))
	}

	return expr.CompoundExpression{Expressions: children, Op: op}, nil
}
