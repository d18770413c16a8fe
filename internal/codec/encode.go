package codec

import (
	"github.com/dirquery/dirquery/internal/expr"
	"github.com/dirquery/dirquery/internal/jval"
)

// Encode converts an expression tree to its JSON value form.
//
// Encode is total over the four expression variants and fails with
// ErrCodeUnsupportedExpression for anything else. Recursion depth equals
// tree depth.
func Encode(e expr.Expression) (jval.Value, error) {
	switch node := e.(type) {
	case expr.CompoundExpression:
		return encodeCompound(node)
	case *expr.CompoundExpression:
		return encodeCompound(*node)
	case expr.MatchExpression:
		return encodeMatch(node), nil
	case *expr.MatchExpression:
		return encodeMatch(*node), nil
	case expr.ExistsExpression:
		return encodeFieldOnly("ExistsExpression", node.FieldName), nil
	case *expr.ExistsExpression:
		return encodeFieldOnly("ExistsExpression", node.FieldName), nil
	case expr.BooleanExpression:
		return encodeFieldOnly("BooleanExpression", node.FieldName), nil
	case *expr.BooleanExpression:
		return encodeFieldOnly("BooleanExpression", node.FieldName), nil
	default:
		return nil, newUnsupportedExpression(e)
	}
}

// EncodeText converts an expression tree to compact JSON text.
func EncodeText(e expr.Expression) (string, error) {
	v, err := Encode(e)
	if err != nil {
		return "", err
	}
	data, err := jval.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func encodeMatch(e expr.MatchExpression) *jval.Object {
	obj := jval.NewObject()
	obj.Set("type", jval.String("MatchExpression"))
	obj.Set("field", jval.String(e.FieldName.Name()))
	obj.Set("value", jval.String(e.FieldValue))
	obj.Set("match", jval.String(e.MatchType.Name()))
	obj.Set("flags", jval.String(e.Flags.Name()))
	return obj
}

// encodeFieldOnly covers the two single-field node kinds, which share a
// wire shape and differ only in discriminator.
func encodeFieldOnly(typeName string, f expr.FieldName) *jval.Object {
	obj := jval.NewObject()
	obj.Set("type", jval.String(typeName))
	obj.Set("field", jval.String(f.Name()))
	return obj
}

func encodeCompound(e expr.CompoundExpression) (*jval.Object, error) {
	children := make(jval.Array, 0, len(e.Expressions))
	for _, child := range e.Expressions {
		v, err := Encode(child)
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}

	obj := jval.NewObject()
	obj.Set("type", jval.String("CompoundExpression"))
	obj.Set("operand", jval.String(e.Op.Name()))
	obj.Set("expressions", children)
	return obj, nil
}
