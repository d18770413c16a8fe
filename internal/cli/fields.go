package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// FieldInfo describes one resolvable wire field name.
type FieldInfo struct {
	Wire      string `json:"wire"`
	Canonical string `json:"canonical"`
}

// NewFieldsCommand creates the fields command.
func NewFieldsCommand(rootOpts *RootOptions) *cobra.Command {
	var fieldMapPath string

	cmd := &cobra.Command{
		Use:           "fields",
		Short:         "List the field names the active map resolves",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(rootOpts, fieldMapPath, cmd)
		},
	}

	cmd.Flags().StringVar(&fieldMapPath, "fields", "", "YAML field map (default: standard fields)")

	return cmd
}

func runFields(opts *RootOptions, fieldMapPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	fieldMap, err := loadFieldMap(fieldMapPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeRead, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "load field map", err)
	}

	infos := make([]FieldInfo, 0, len(fieldMap))
	for _, wire := range fieldMap.Names() {
		canonical, _ := fieldMap.LookupFieldName(wire)
		infos = append(infos, FieldInfo{Wire: wire, Canonical: canonical.Name()})
	}

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	var b strings.Builder
	for _, info := range infos {
		fmt.Fprintf(&b, "%s -> %s\n", info.Wire, info.Canonical)
	}
	return formatter.Success(strings.TrimRight(b.String(), "\n"))
}
