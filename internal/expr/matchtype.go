package expr

import "fmt"

// MatchType identifies how a MatchExpression compares field values.
type MatchType uint8

const (
	// MatchEquals matches the whole value exactly.
	MatchEquals MatchType = iota

	// MatchStartsWith matches a value prefix.
	MatchStartsWith

	// MatchEndsWith matches a value suffix.
	MatchEndsWith

	// MatchContains matches a value substring.
	MatchContains

	// MatchLessThan matches values ordered before the target.
	MatchLessThan

	// MatchGreaterThan matches values ordered after the target.
	MatchGreaterThan

	// MatchLessThanOrEqualTo matches values ordered before or equal to the target.
	MatchLessThanOrEqualTo

	// MatchGreaterThanOrEqualTo matches values ordered after or equal to the target.
	MatchGreaterThanOrEqualTo
)

// matchTypeNames holds the stable wire name for each match type, in
// declaration order. Both Name and LookupMatchType derive from this table
// so the two directions cannot drift apart.
var matchTypeNames = []struct {
	matchType MatchType
	name      string
}{
	{MatchEquals, "equals"},
	{MatchStartsWith, "startsWith"},
	{MatchEndsWith, "endsWith"},
	{MatchContains, "contains"},
	{MatchLessThan, "lessThan"},
	{MatchGreaterThan, "greaterThan"},
	{MatchLessThanOrEqualTo, "lessThanOrEqualTo"},
	{MatchGreaterThanOrEqualTo, "greaterThanOrEqualTo"},
}

// Name returns the stable wire name of the match type.
func (m MatchType) Name() string {
	for _, entry := range matchTypeNames {
		if entry.matchType == m {
			return entry.name
		}
	}
	return fmt.Sprintf("MatchType(%d)", uint8(m))
}

// LookupMatchType resolves a wire name to a MatchType.
// Unknown names are an error; lookup is total over the names Name produces.
func LookupMatchType(name string) (MatchType, error) {
	for _, entry := range matchTypeNames {
		if entry.name == name {
			return entry.matchType, nil
		}
	}
	return 0, fmt.Errorf("unknown match type: %q", name)
}
