package cli

import (
	"github.com/spf13/cobra"

	"github.com/dirquery/dirquery/internal/codec"
	"github.com/dirquery/dirquery/internal/expr"
	"github.com/dirquery/dirquery/internal/fields"
)

// ValidateResult holds validation results.
type ValidateResult struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var fieldMapPath string
	var lint bool

	cmd := &cobra.Command{
		Use:   "validate <expression-file>",
		Short: "Validate a JSON query expression",
		Long: `Validate a JSON query expression file against a field map.

Decoding checks the wire shape: the type discriminator, required keys,
match type, operand and flag names, and field-name resolution. With
--lint, structural warnings (empty compounds, malformed guid values)
are reported as failures too.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], fieldMapPath, lint, cmd)
		},
	}

	cmd.Flags().StringVar(&fieldMapPath, "fields", "", "YAML field map (default: standard fields)")
	cmd.Flags().BoolVar(&lint, "lint", false, "report structural warnings as failures")

	return cmd
}

func runValidate(opts *RootOptions, exprPath, fieldMapPath string, lint bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	resolver, err := loadFieldMap(fieldMapPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeRead, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "load field map", err)
	}
	formatter.Verbosef("field map resolves %d names", len(resolver))

	tree, err := loadExpression(resolver, exprPath)
	if err != nil {
		code := ErrCodeDecode
		if GetExitCode(err) == ExitCommandError {
			code = ErrCodeRead
		}
		if outErr := formatter.Error(code, err.Error(), string(codec.CodeOf(err))); outErr != nil {
			return outErr
		}
		if GetExitCode(err) == ExitCommandError {
			return err
		}
		return WrapExitError(ExitFailure, "invalid expression", err)
	}

	result := ValidateResult{Valid: true}
	if lint {
		result.Warnings = lintExpression(tree)
		result.Valid = len(result.Warnings) == 0
	}

	if !result.Valid {
		if outErr := formatter.Error(ErrCodeLint, "expression has lint warnings", result.Warnings); outErr != nil {
			return outErr
		}
		return NewExitError(ExitFailure, "expression has lint warnings")
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success("✓ expression is valid")
}

// lintExpression combines structural validation with per-field value checks.
func lintExpression(tree expr.Expression) []string {
	warnings := append([]string{}, expr.Validate(tree).Warnings...)
	warnings = append(warnings, lintValues(tree)...)
	return warnings
}

func lintValues(e expr.Expression) []string {
	var warnings []string
	switch node := e.(type) {
	case expr.MatchExpression:
		if err := fields.CheckValue(node.FieldName, node.FieldValue); err != nil {
			warnings = append(warnings, err.Error())
		}
	case *expr.MatchExpression:
		warnings = append(warnings, lintValues(*node)...)
	case expr.CompoundExpression:
		for _, child := range node.Expressions {
			warnings = append(warnings, lintValues(child)...)
		}
	case *expr.CompoundExpression:
		warnings = append(warnings, lintValues(*node)...)
	}
	return warnings
}
