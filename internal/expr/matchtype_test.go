package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchType_Names(t *testing.T) {
	tests := []struct {
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

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.matchType.Name())
		})
	}
}

func TestLookupMatchType_RoundTrip(t *testing.T) {
	// Every name Name produces must resolve back to the same value
	for _, entry := range matchTypeNames {
		got, err := LookupMatchType(entry.matchType.Name())
		require.NoError(t, err)
		assert.Equal(t, entry.matchType, got)
	}
}

func TestLookupMatchType_Unknown(t *testing.T) {
	_, err := LookupMatchType("fuzzyMatch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzyMatch")
}

func TestLookupMatchType_CaseSensitive(t *testing.T) {
	// Wire names are exact; "Equals" is not "equals"
	_, err := LookupMatchType("Equals")
	assert.Error(t, err)
}

func TestMatchType_NameTotal(t *testing.T) {
	// Name is total even for values outside the declared set
	assert.Equal(t, "MatchType(200)", MatchType(200).Name())
}
