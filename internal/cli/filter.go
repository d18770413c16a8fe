package cli

import (
	"github.com/spf13/cobra"

	"github.com/dirquery/dirquery/internal/codec"
	"github.com/dirquery/dirquery/internal/ldapfilter"
)

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	var fieldMapPath string
	var attrMapPath string

	cmd := &cobra.Command{
		Use:           "filter <expression-file>",
		Short:         "Render an expression as an RFC 4515 LDAP filter",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(rootOpts, args[0], fieldMapPath, attrMapPath, cmd)
		},
	}

	cmd.Flags().StringVar(&fieldMapPath, "fields", "", "YAML field map (default: standard fields)")
	cmd.Flags().StringVar(&attrMapPath, "attrs", "", "YAML attribute map (default: standard attributes)")

	return cmd
}

func runFilter(opts *RootOptions, exprPath, fieldMapPath, attrMapPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	resolver, err := loadFieldMap(fieldMapPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeRead, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "load field map", err)
	}

	attrs, err := loadAttributeMap(attrMapPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeRead, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "load attribute map", err)
	}

	tree, err := loadExpression(resolver, exprPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeDecode, err.Error(), string(codec.CodeOf(err))); outErr != nil {
			return outErr
		}
		if GetExitCode(err) == ExitCommandError {
			return err
		}
		return WrapExitError(ExitFailure, "invalid expression", err)
	}

	filter, err := ldapfilter.Render(tree, attrs)
	if err != nil {
		if outErr := formatter.Error(ErrCodeRender, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "render filter", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"filter": filter})
	}
	return formatter.Success(filter)
}
