package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSet(t *testing.T) {
	t.Parallel()

	s := DefaultSet()

	assert.True(t, s.ContainsMajor("API CHANGES"))
	assert.True(t, s.ContainsMinor("ENHANCEMENTS"))
	assert.True(t, s.ContainsRevision("BUG FIXES"))
	assert.True(t, s.ContainsRevision("DOCUMENTATION"))

	assert.False(t, s.ContainsMajor("ENHANCEMENTS"))
	assert.False(t, s.ContainsRevision("API CHANGES"))
}

func TestContains_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	s := DefaultSet()

	assert.False(t, s.ContainsMajor("api changes"), "matching is case sensitive")
	assert.False(t, s.ContainsMajor("API CHANGE"), "no substring matching")
	assert.False(t, s.ContainsMajor(" API CHANGES"), "no trimming at match time")
}

func TestSplitLabels(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected []string
	}{
		"comma separated with spaces": {
			input:    "BUG FIXES, DOCUMENTATION",
			expected: []string{"BUG FIXES", "DOCUMENTATION"},
		},
		"single label": {
			input:    "API CHANGES",
			expected: []string{"API CHANGES"},
		},
		"empty entries dropped": {
			input:    "A,, B ,",
			expected: []string{"A", "B"},
		},
		"empty string": {
			input:    "",
			expected: nil,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SplitLabels(tt.input))
		})
	}
}

func TestAllLabels_SkeletonOrder(t *testing.T) {
	t.Parallel()

	s := NewSet(
		[]string{"BREAKING"},
		[]string{"FEATURES", "ENHANCEMENTS"},
		[]string{"FIXES"},
	)

	labels := s.AllLabels()

	expected := []Label{
		{Tier: Major, Name: "BREAKING"},
		{Tier: Minor, Name: "FEATURES"},
		{Tier: Minor, Name: "ENHANCEMENTS"},
		{Tier: Revision, Name: "FIXES"},
	}
	assert.Equal(t, expected, labels)
}

func TestNewSet_NilFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	s := NewSet([]string{"BREAKING"}, nil, nil)

	assert.True(t, s.ContainsMajor("BREAKING"))
	assert.False(t, s.ContainsMajor("API CHANGES"))
	assert.True(t, s.ContainsMinor("ENHANCEMENTS"))
	assert.True(t, s.ContainsRevision("BUG FIXES"))
}
