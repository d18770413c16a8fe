package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dirquery/dirquery/internal/codec"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	var fieldMapPath string
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <expression-file>",
		Short: "Rewrite an expression in canonical compact form",
		Long: `Decode a JSON query expression and re-encode it as canonical
compact wire text: fixed key order, minified separators, default
match and flags spelled out.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(rootOpts, args[0], fieldMapPath, write, cmd)
		},
	}

	cmd.Flags().StringVar(&fieldMapPath, "fields", "", "YAML field map (default: standard fields)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")

	return cmd
}

func runFmt(opts *RootOptions, exprPath, fieldMapPath string, write bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	resolver, err := loadFieldMap(fieldMapPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeRead, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "load field map", err)
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

	text, err := codec.EncodeText(tree)
	if err != nil {
		if outErr := formatter.Error(ErrCodeEncode, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "encode expression", err)
	}

	if write {
		if err := os.WriteFile(exprPath, []byte(text+"\n"), 0o644); err != nil {
			if outErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "rewrite expression file", err)
		}
		formatter.Verbosef("rewrote %s", exprPath)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"expression": text})
	}
	return formatter.Success(text)
}
