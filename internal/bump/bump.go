// Package bump decides which version tier the pending release warrants.
// The classifier is a strict three-way precedence: any major-tier category
// wins over everything, any minor-tier category (or ungrouped changes)
// wins over revision, and anything else is a revision bump. Exactly one
// increment is applied per decision.
package bump

import (
	"github.com/relnext/relnext/internal/category"
	"github.com/relnext/relnext/internal/semver"
)

// Decision records which tier was chosen and the label that triggered it.
type Decision struct {
	Tier    category.Tier
	Trigger string // matching label, or "" for ungrouped/unrecognized content
	Next    semver.Version
}

// Next computes the version following prev given the names of the pending
// release's non-empty groups. The caller guarantees at least one non-empty
// group exists; with none, the decision degrades to a revision bump.
func Next(prev semver.Version, nonEmptyGroups []string, cats category.Set) Decision {
	// Iterate configured labels in order so the reported trigger is
	// deterministic; the outcome is the same whichever label matched.
	for _, label := range cats.MajorLabels() {
		if containsName(nonEmptyGroups, label) {
			return Decision{Tier: category.Major, Trigger: label, Next: prev.IncrementMajorTier()}
		}
	}

	for _, label := range cats.MinorLabels() {
		if containsName(nonEmptyGroups, label) {
			return Decision{Tier: category.Minor, Trigger: label, Next: prev.IncrementMinorTier()}
		}
	}
	// Ungrouped changes are treated as minor: without a category there is
	// no evidence the change is only a fix.
	if containsName(nonEmptyGroups, "") {
		return Decision{Tier: category.Minor, Next: prev.IncrementMinorTier()}
	}

	return Decision{Tier: category.Revision, Next: prev.IncrementRevisionTier()}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
