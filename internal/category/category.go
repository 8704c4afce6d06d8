// Package category defines the configurable mapping from changelog group
// names to version tiers. Each tier (major, minor, revision) owns an
// ordered list of category labels; a changelog group whose name matches a
// label counts toward that tier when the next version is decided.
package category

import "strings"

// Tier identifies which version component a category label bumps.
type Tier int

const (
	Major Tier = iota
	Minor
	Revision
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Revision:
		return "revision"
	default:
		return "unknown"
	}
}

// Label pairs a category label with the tier it belongs to.
type Label struct {
	Tier Tier
	Name string
}

// Set holds the three ordered label lists. Order matters only for skeleton
// output; membership tests are exact string comparisons.
type Set struct {
	major    []string
	minor    []string
	revision []string
}

// Default category labels, matching the conventional Changes file groups.
var (
	DefaultMajor    = []string{"API CHANGES"}
	DefaultMinor    = []string{"ENHANCEMENTS"}
	DefaultRevision = []string{"BUG FIXES", "DOCUMENTATION"}
)

// NewSet builds a Set from explicit label lists. Nil lists fall back to the
// defaults for that tier.
func NewSet(major, minor, revision []string) Set {
	if major == nil {
		major = DefaultMajor
	}
	if minor == nil {
		minor = DefaultMinor
	}
	if revision == nil {
		revision = DefaultRevision
	}
	return Set{
		major:    append([]string(nil), major...),
		minor:    append([]string(nil), minor...),
		revision: append([]string(nil), revision...),
	}
}

// DefaultSet returns a Set with the default labels for all three tiers.
func DefaultSet() Set {
	return NewSet(nil, nil, nil)
}

// SplitLabels splits a comma-separated configuration string into labels,
// trimming surrounding whitespace and dropping empty entries. Configuration
// arrives as free text, so "BUG FIXES, DOCUMENTATION" and
// ["BUG FIXES","DOCUMENTATION"] must mean the same thing.
func SplitLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}

// ContainsMajor reports whether name is a major-tier label.
func (s Set) ContainsMajor(name string) bool { return contains(s.major, name) }

// ContainsMinor reports whether name is a minor-tier label.
func (s Set) ContainsMinor(name string) bool { return contains(s.minor, name) }

// ContainsRevision reports whether name is a revision-tier label.
func (s Set) ContainsRevision(name string) bool { return contains(s.revision, name) }

// MajorLabels returns the configured major-tier labels in order.
func (s Set) MajorLabels() []string { return append([]string(nil), s.major...) }

// MinorLabels returns the configured minor-tier labels in order.
func (s Set) MinorLabels() []string { return append([]string(nil), s.minor...) }

// RevisionLabels returns the configured revision-tier labels in order.
func (s Set) RevisionLabels() []string { return append([]string(nil), s.revision...) }

// AllLabels returns every configured label in skeleton order: major tier
// first, then minor, then revision, each tier in its configured order.
func (s Set) AllLabels() []Label {
	labels := make([]Label, 0, len(s.major)+len(s.minor)+len(s.revision))
	for _, name := range s.major {
		labels = append(labels, Label{Tier: Major, Name: name})
	}
	for _, name := range s.minor {
		labels = append(labels, Label{Tier: Minor, Name: name})
	}
	for _, name := range s.revision {
		labels = append(labels, Label{Tier: Revision, Name: name})
	}
	return labels
}

func contains(labels []string, name string) bool {
	for _, label := range labels {
		if label == name {
			return true
		}
	}
	return false
}
