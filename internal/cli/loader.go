package cli

import (
	"fmt"
	"os"

	"github.com/dirquery/dirquery/internal/codec"
	"github.com/dirquery/dirquery/internal/expr"
	"github.com/dirquery/dirquery/internal/fields"
	"github.com/dirquery/dirquery/internal/ldapfilter"
)

// Error codes used in CLI responses.
const (
	ErrCodeRead    = "READ_ERROR"
	ErrCodeDecode  = "DECODE_ERROR"
	ErrCodeLint    = "LINT_FAILURE"
	ErrCodeRender  = "RENDER_ERROR"
	ErrCodeEncode  = "ENCODE_ERROR"
	ErrCodeGeneric = "ERROR"
)

// loadFieldMap loads the resolver for a command. An empty path selects the
// standard directory field set.
func loadFieldMap(path string) (fields.Map, error) {
	if path == "" {
		return fields.Standard(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open field map: %w", err)
	}
	defer f.Close()
	return fields.FromYAML(f)
}

// loadAttributeMap loads the LDAP attribute map for the filter command.
// An empty path selects the standard attribute set.
func loadAttributeMap(path string) (ldapfilter.AttributeMap, error) {
	if path == "" {
		return ldapfilter.StandardAttributes(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attribute map: %w", err)
	}
	defer f.Close()
	return ldapfilter.AttributesFromYAML(f)
}

// loadExpression reads a JSON expression file and decodes it against the
// given resolver.
func loadExpression(resolver codec.Resolver, path string) (expr.Expression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read expression file", err)
	}
	return codec.DecodeText(resolver, string(data))
}
