// Package semver implements the three-part version arithmetic used by the
// release commands. Versions are immutable values; increment operations
// return a new version with the bumped component incremented and every
// component to its right reset to zero, matching the dotted-decimal
// convention the Changes file uses.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a normalized three-part version (major.minor.revision).
type Version struct {
	Major    int
	Minor    int
	Revision int
}

// Parse parses a version string of up to three dot-separated non-negative
// integers. Missing components default to zero, so "1" and "1.0.0" are the
// same version. A leading "v" prefix is accepted and stripped.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if trimmed == "" {
		return Version{}, fmt.Errorf("parsing version %q: empty version string", s)
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("parsing version %q: expected at most 3 components, got %d", s, len(parts))
	}

	components := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("parsing version %q: component %q is not a number", s, part)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("parsing version %q: component %q is negative", s, part)
		}
		components[i] = n
	}

	return Version{Major: components[0], Minor: components[1], Revision: components[2]}, nil
}

// MustParse parses a version string and panics on error. For tests and
// compile-time constants only.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IncrementMajorTier returns the version with the major component bumped
// and minor and revision reset to zero.
func (v Version) IncrementMajorTier() Version {
	return Version{Major: v.Major + 1}
}

// IncrementMinorTier returns the version with the minor component bumped
// and revision reset to zero.
func (v Version) IncrementMinorTier() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// IncrementRevisionTier returns the version with the revision component
// bumped. Nothing is reset; revision is the lowest tier.
func (v Version) IncrementRevisionTier() Version {
	return Version{Major: v.Major, Minor: v.Minor, Revision: v.Revision + 1}
}

// String returns the version in "major.minor.revision" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Compare returns -1, 0 or 1 depending on whether a is lower than, equal
// to or higher than b.
func Compare(a, b Version) int {
	if c := compareInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	return compareInt(a.Revision, b.Revision)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Numify encodes the version as a single decimal number string, with minor
// and revision zero-padded to three digits each: 1.2.3 becomes "1.002003".
// Consumers that sort or compare versions numerically rely on this form.
func (v Version) Numify() string {
	return fmt.Sprintf("%d.%03d%03d", v.Major, v.Minor, v.Revision)
}
