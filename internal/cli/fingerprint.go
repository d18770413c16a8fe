package cli

import (
	"github.com/spf13/cobra"

	"github.com/dirquery/dirquery/internal/codec"
)

// NewFingerprintCommand creates the fingerprint command.
func NewFingerprintCommand(rootOpts *RootOptions) *cobra.Command {
	var fieldMapPath string

	cmd := &cobra.Command{
		Use:   "fingerprint <expression-file>",
		Short: "Print the content-addressed identity of an expression",
		Long: `Compute the stable fingerprint of a JSON query expression.

Equal expressions fingerprint identically regardless of input
formatting, absent default keys, or Unicode composition, which makes
the result usable as a cache key.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFingerprint(rootOpts, args[0], fieldMapPath, cmd)
		},
	}

	cmd.Flags().StringVar(&fieldMapPath, "fields", "", "YAML field map (default: standard fields)")

	return cmd
}

func runFingerprint(opts *RootOptions, exprPath, fieldMapPath string, cmd *cobra.Command) error {
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

	fp, err := codec.Fingerprint(tree)
	if err != nil {
		if outErr := formatter.Error(ErrCodeEncode, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "fingerprint expression", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"fingerprint": fp})
	}
	return formatter.Success(fp)
}
