package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected Version
	}{
		"three components": {
			input:    "1.2.3",
			expected: Version{Major: 1, Minor: 2, Revision: 3},
		},
		"two components default revision": {
			input:    "0.4",
			expected: Version{Major: 0, Minor: 4},
		},
		"single component": {
			input:    "2",
			expected: Version{Major: 2},
		},
		"v prefix stripped": {
			input:    "v1.0.0",
			expected: Version{Major: 1},
		},
		"surrounding whitespace": {
			input:    " 0.0.1 ",
			expected: Version{Revision: 1},
		},
		"zero version": {
			input:    "0.0.0",
			expected: Version{},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty string":        "",
		"four components":     "1.2.3.4",
		"non-numeric":         "1.x.0",
		"negative component":  "1.-2.0",
		"bare dots":           "..",
		"trailing dot":        "1.2.",
	}

	for name, input := range tests {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestIncrement_TierSemantics(t *testing.T) {
	t.Parallel()

	base := MustParse("1.2.3")

	assert.Equal(t, "2.0.0", base.IncrementMajorTier().String(), "major bump resets minor and revision")
	assert.Equal(t, "1.3.0", base.IncrementMinorTier().String(), "minor bump resets revision")
	assert.Equal(t, "1.2.4", base.IncrementRevisionTier().String(), "revision bump resets nothing")

	// Increments never mutate the receiver.
	assert.Equal(t, "1.2.3", base.String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a, b     string
		expected int
	}{
		"equal":               {a: "1.2.3", b: "1.2.3", expected: 0},
		"major decides":       {a: "2.0.0", b: "1.9.9", expected: 1},
		"minor decides":       {a: "1.3.0", b: "1.10.0", expected: -1},
		"revision decides":    {a: "1.2.4", b: "1.2.3", expected: 1},
		"missing parts equal": {a: "1", b: "1.0.0", expected: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(MustParse(tt.a), MustParse(tt.b)))
		})
	}
}

func TestNumify(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		version  string
		expected string
	}{
		"zero base revision": {version: "0.0.2", expected: "0.000002"},
		"full width":         {version: "1.2.3", expected: "1.002003"},
		"wide components":    {version: "12.34.567", expected: "12.034567"},
		"zero version":       {version: "0.0.0", expected: "0.000000"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, MustParse(tt.version).Numify())
		})
	}
}
