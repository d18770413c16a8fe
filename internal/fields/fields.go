// Package fields provides directory record field registries and the stock
// field-name resolver used by the codec.
//
// Field names on the wire are backend-specific. A Map resolves wire names
// to canonical expr.FieldName identifiers; Standard covers the common
// directory service fields, and FromYAML loads a per-backend map from a
// configuration file.
package fields

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dirquery/dirquery/internal/expr"
)

// Canonical field names of the standard directory record schema.
const (
	UID            expr.FieldName = "uid"
	GUID           expr.FieldName = "guid"
	RecordType     expr.FieldName = "recordType"
	ShortNames     expr.FieldName = "shortNames"
	FullNames      expr.FieldName = "fullNames"
	EmailAddresses expr.FieldName = "emailAddresses"
	MemberUIDs     expr.FieldName = "memberUIDs"
	Password       expr.FieldName = "password"
)

// Map resolves wire field names to canonical field identifiers.
// It satisfies the codec's Resolver interface.
type Map map[string]expr.FieldName

// Standard returns the stock registry, where every standard field resolves
// under its own canonical name.
func Standard() Map {
	return Map{
		"uid":            UID,
		"guid":           GUID,
		"recordType":     RecordType,
		"shortNames":     ShortNames,
		"fullNames":      FullNames,
		"emailAddresses": EmailAddresses,
		"memberUIDs":     MemberUIDs,
		"password":       Password,
	}
}

// LookupFieldName resolves a wire field name. Unknown names are an error.
func (m Map) LookupFieldName(name string) (expr.FieldName, error) {
	f, ok := m[name]
	if !ok {
		return "", fmt.Errorf("unknown field name: %q", name)
	}
	return f, nil
}

// Names returns the wire names the map resolves, sorted.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromYAML loads a field map from YAML of the form:
//
//	fields:
//	  mail: emailAddresses
//	  cn: fullNames
//
// Wire names map to canonical field identifiers; an empty identifier is an
// error. The result contains only the mappings given in the file.
func FromYAML(r io.Reader) (Map, error) {
	var doc struct {
		Fields map[string]string `yaml:"fields"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse field map: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("field map defines no fields")
	}

	m := make(Map, len(doc.Fields))
	for wire, canonical := range doc.Fields {
		if canonical == "" {
			return nil, fmt.Errorf("field %q maps to an empty identifier", wire)
		}
		m[wire] = expr.FieldName(canonical)
	}
	return m, nil
}

// CheckValue lints a match value for a field. Only fields with a known
// value syntax are checked: guid values must parse as UUIDs. All other
// fields accept any string.
func CheckValue(f expr.FieldName, value string) error {
	if f != GUID {
		return nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("field %q requires a UUID value: %w", f.Name(), err)
	}
	return nil
}
