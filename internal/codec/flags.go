package codec

import (
	"strings"

	"github.com/dirquery/dirquery/internal/expr"
)

// parseFlags decodes the wire spelling of a match-flag set.
//
// Flags travel as a string, not a JSON array, because the flag-combination
// concept has no native JSON equivalent. The grammar is a wire-format
// contract and must be reproduced exactly:
//
//	"{}"     -> the empty flag set
//	"{A,B}"  -> the interior split on ",", each name looked up and
//	            combined with bitwise OR
//	anything else -> a single flag name, looked up directly
//
// Malformed brace forms get no partial parsing: an unterminated "{A,B" is
// a single flag name that fails lookup, and empty components from interiors
// like "{A,}" are passed to lookup as-is and fail there.
func parseFlags(s string) (expr.MatchFlags, error) {
	if s == "{}" {
		return expr.FlagNone, nil
	}

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		flags := expr.FlagNone
		for _, name := range strings.Split(s[1:len(s)-1], ",") {
			flag, err := expr.LookupMatchFlag(name)
			if err != nil {
				return 0, newUnknownFlag(name)
			}
			flags |= flag
		}
		return flags, nil
	}

	flag, err := expr.LookupMatchFlag(s)
	if err != nil {
		return 0, newUnknownFlag(s)
	}
	return flag, nil
}
