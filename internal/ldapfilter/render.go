// Package ldapfilter renders query expressions as RFC 4515 LDAP filter
// text.
//
// Rendering is serialization only: no directory connection, no evaluation.
// It exists for callers whose backend is an LDAP directory and who want the
// filter string to hand to their own LDAP client.
package ldapfilter

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dirquery/dirquery/internal/expr"
)

// AttributeMap maps canonical field names to LDAP attribute names.
// Rendering fails for fields the map does not cover.
type AttributeMap map[expr.FieldName]string

// StandardAttributes maps the stock directory fields to common LDAP
// attribute names (inetOrgPerson and friends).
func StandardAttributes() AttributeMap {
	return AttributeMap{
		"uid":            "uid",
		"guid":           "entryUUID",
		"recordType":     "objectClass",
		"shortNames":     "uid",
		"fullNames":      "cn",
		"emailAddresses": "mail",
		"memberUIDs":     "memberUid",
	}
}

// AttributesFromYAML loads an attribute map from YAML of the form:
//
//	attributes:
//	  emailAddresses: mail
//	  fullNames: cn
func AttributesFromYAML(r io.Reader) (AttributeMap, error) {
	var doc struct {
		Attributes map[string]string `yaml:"attributes"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse attribute map: %w", err)
	}
	if len(doc.Attributes) == 0 {
		return nil, fmt.Errorf("attribute map defines no attributes")
	}

	m := make(AttributeMap, len(doc.Attributes))
	for field, attr := range doc.Attributes {
		if attr == "" {
			return nil, fmt.Errorf("field %q maps to an empty attribute", field)
		}
		m[expr.FieldName(field)] = attr
	}
	return m, nil
}

// Render converts an expression tree to RFC 4515 filter text.
//
// Node mapping:
//
//	MatchExpression   -> (attr=value) and substring/ordering variants
//	ExistsExpression  -> (attr=*)
//	BooleanExpression -> (attr=TRUE)
//	CompoundExpression-> (&...) / (|...)
//
// The NOT flag wraps its match in (!...). The caseInsensitive flag does
// not render: LDAP case sensitivity is decided by each attribute's
// matching rule, not by filter syntax.
func Render(e expr.Expression, attrs AttributeMap) (string, error) {
	switch node := e.(type) {
	case expr.CompoundExpression:
		return renderCompound(node, attrs)
	case *expr.CompoundExpression:
		return renderCompound(*node, attrs)
	case expr.MatchExpression:
		return renderMatch(node, attrs)
	case *expr.MatchExpression:
		return renderMatch(*node, attrs)
	case expr.ExistsExpression:
		return renderPresence(node.FieldName, attrs)
	case *expr.ExistsExpression:
		return renderPresence(node.FieldName, attrs)
	case expr.BooleanExpression:
		return renderBoolean(node.FieldName, attrs)
	case *expr.BooleanExpression:
		return renderBoolean(node.FieldName, attrs)
	default:
		return "", fmt.Errorf("cannot render expression type %T", e)
	}
}

func renderCompound(c expr.CompoundExpression, attrs AttributeMap) (string, error) {
	op := "&"
	if c.Op == expr.OperandOR {
		op = "|"
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(op)
	for _, child := range c.Expressions {
		rendered, err := Render(child, attrs)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	b.WriteByte(')')
	return b.String(), nil
}

func renderMatch(m expr.MatchExpression, attrs AttributeMap) (string, error) {
	attr, err := attributeFor(m.FieldName, attrs)
	if err != nil {
		return "", err
	}
	value := EscapeValue(m.FieldValue)

	var filter string
	switch m.MatchType {
	case expr.MatchEquals:
		filter = fmt.Sprintf("(%s=%s)", attr, value)
	case expr.MatchStartsWith:
		filter = fmt.Sprintf("(%s=%s*)", attr, value)
	case expr.MatchEndsWith:
		filter = fmt.Sprintf("(%s=*%s)", attr, value)
	case expr.MatchContains:
		filter = fmt.Sprintf("(%s=*%s*)", attr, value)
	case expr.MatchLessThanOrEqualTo:
		filter = fmt.Sprintf("(%s<=%s)", attr, value)
	case expr.MatchGreaterThanOrEqualTo:
		filter = fmt.Sprintf("(%s>=%s)", attr, value)
	case expr.MatchLessThan:
		// RFC 4515 has no strict ordering filters
		filter = fmt.Sprintf("(!(%s>=%s))", attr, value)
	case expr.MatchGreaterThan:
		filter = fmt.Sprintf("(!(%s<=%s))", attr, value)
	default:
		return "", fmt.Errorf("cannot render match type %s", m.MatchType.Name())
	}

	if m.Flags&expr.FlagNot != 0 {
		filter = "(!" + filter + ")"
	}
	return filter, nil
}

func renderPresence(f expr.FieldName, attrs AttributeMap) (string, error) {
	attr, err := attributeFor(f, attrs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s=*)", attr), nil
}

func renderBoolean(f expr.FieldName, attrs AttributeMap) (string, error) {
	attr, err := attributeFor(f, attrs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s=TRUE)", attr), nil
}

func attributeFor(f expr.FieldName, attrs AttributeMap) (string, error) {
	attr, ok := attrs[f]
	if !ok {
		return "", fmt.Errorf("no LDAP attribute mapped for field %q", f.Name())
	}
	return attr, nil
}

// EscapeValue escapes a filter value per RFC 4515: the characters
// * ( ) \ and NUL become backslash-hex sequences.
func EscapeValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '*':
			b.WriteString(`\2a`)
		case '(':
			b.WriteString(`\28`)
		case ')':
			b.WriteString(`\29`)
		case '\\':
			b.WriteString(`\5c`)
		case 0x00:
			b.WriteString(`\00`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
