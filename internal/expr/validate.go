package expr

import "fmt"

// ValidationResult contains structural analysis of an expression tree.
//
// Validation is advisory: the codec decodes permissively so that any tree a
// peer produced can be reconstructed, and callers who want stricter checks
// run Validate afterwards.
type ValidationResult struct {
	// Valid indicates the tree raised no warnings.
	Valid bool

	// Warnings lists structural problems found in the tree.
	// Empty when Valid is true.
	Warnings []string
}

// Validate checks an expression tree for structural problems that the
// permissive decoder does not reject:
//
//  1. Nil expression nodes
//  2. Empty field names
//  3. Compound expressions with no sub-expressions
//
// Validate is a pure function with no side effects.
func Validate(e Expression) ValidationResult {
	v := &validator{
		warnings: []string{},
	}
	v.validate(e, "expression")

	return ValidationResult{
		Valid:    len(v.warnings) == 0,
		Warnings: v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

// validate recursively checks an expression node. path locates the node in
// the tree for warning messages.
func (v *validator) validate(e Expression, path string) {
	if e == nil {
		v.addWarning("%s: nil expression node", path)
		return
	}

	switch node := e.(type) {
	case MatchExpression:
		v.validateField(node.FieldName, path)
	case *MatchExpression:
		v.validateField(node.FieldName, path)
	case ExistsExpression:
		v.validateField(node.FieldName, path)
	case *ExistsExpression:
		v.validateField(node.FieldName, path)
	case BooleanExpression:
		v.validateField(node.FieldName, path)
	case *BooleanExpression:
		v.validateField(node.FieldName, path)
	case CompoundExpression:
		v.validateCompound(node, path)
	case *CompoundExpression:
		v.validateCompound(*node, path)
	default:
		v.addWarning("%s: unknown expression type %T", path, e)
	}
}

func (v *validator) validateField(f FieldName, path string) {
	if f == "" {
		v.addWarning("%s: empty field name", path)
	}
}

func (v *validator) validateCompound(c CompoundExpression, path string) {
	if len(c.Expressions) == 0 {
		v.addWarning("%s: compound expression has no sub-expressions", path)
	}
	for i, child := range c.Expressions {
		v.validate(child, fmt.Sprintf("%s.expressions[%d]", path, i))
	}
}
