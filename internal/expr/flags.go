package expr

import (
	"fmt"
	"strings"
)

// MatchFlags is a bit-flag set of match behavior modifiers.
// Flags combine with bitwise OR.
type MatchFlags uint8

// FlagNone is the empty flag set.
const FlagNone MatchFlags = 0

const (
	// FlagNot negates the match.
	FlagNot MatchFlags = 1 << iota

	// FlagCaseInsensitive compares values without case sensitivity.
	FlagCaseInsensitive
)

// matchFlagNames holds the stable wire name for each individual flag, in
// declaration order. Composite spellings iterate this table so the order
// of names inside braces is deterministic.
var matchFlagNames = []struct {
	flag MatchFlags
	name string
}{
	{FlagNot, "NOT"},
	{FlagCaseInsensitive, "caseInsensitive"},
}

// Name returns the wire spelling of the flag set:
//
//	FlagNone                      -> "{}"
//	FlagNot                       -> "NOT"
//	FlagNot | FlagCaseInsensitive -> "{NOT,caseInsensitive}"
//
// The braced composite form is a wire-format contract with the codec's
// flag grammar, not a display convenience.
func (f MatchFlags) Name() string {
	if f == FlagNone {
		return "{}"
	}

	var names []string
	rest := f
	for _, entry := range matchFlagNames {
		if rest&entry.flag != 0 {
			names = append(names, entry.name)
			rest &^= entry.flag
		}
	}
	if rest != 0 {
		// Bits outside the declared flags still need a total Name.
		names = append(names, fmt.Sprintf("MatchFlags(0x%x)", uint8(rest)))
	}

	if len(names) == 1 {
		return names[0]
	}
	return "{" + strings.Join(names, ",") + "}"
}

// LookupMatchFlag resolves a single flag wire name.
// Composite spellings ("{A,B}") are not flag names; the codec's flag
// grammar splits those before calling here.
func LookupMatchFlag(name string) (MatchFlags, error) {
	for _, entry := range matchFlagNames {
		if entry.name == name {
			return entry.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown match flag: %q", name)
}
