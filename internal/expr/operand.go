package expr

import "fmt"

// Operand is the logical connective of a CompoundExpression.
type Operand uint8

const (
	// OperandAND requires all sub-expressions to match.
	OperandAND Operand = iota

	// OperandOR requires any sub-expression to match.
	OperandOR
)

var operandNames = []struct {
	operand Operand
	name    string
}{
	{OperandAND, "AND"},
	{OperandOR, "OR"},
}

// Name returns the stable wire name of the operand.
func (o Operand) Name() string {
	for _, entry := range operandNames {
		if entry.operand == o {
			return entry.name
		}
	}
	return fmt.Sprintf("Operand(%d)", uint8(o))
}

// LookupOperand resolves a wire name to an Operand.
func LookupOperand(name string) (Operand, error) {
	for _, entry := range operandNames {
		if entry.name == name {
			return entry.operand, nil
		}
	}
	return 0, fmt.Errorf("unknown operand: %q", name)
}
