// Package changes parses and rewrites Changes files: a preamble followed
// by release sections, newest first, where each section is a version (or
// the pending-release placeholder token) followed by bracketed category
// groups and dash-prefixed change items.
//
// The parser keeps every input line verbatim, so serializing an unmodified
// document reproduces the original text byte for byte. Edits (deleting a
// group, adding skeleton groups, stamping the pending header) replace only
// the lines they touch.
package changes

// DefaultPendingToken is the placeholder that marks the release section
// accumulating unreleased changes.
const DefaultPendingToken = "{{$NEXT}}"

// Document is a parsed Changes file.
type Document struct {
	pendingToken string
	preamble     []string   // raw lines before the first release header
	fileOrder    []*Release // releases as they appear in the file, newest first
	finalNewline bool
}

// Release is one release section. The ungrouped bucket, when present, is
// the group with the empty name.
type Release struct {
	header  string // raw header line
	name    string // version label or the pending token
	preBody []string
	groups  []*group
}

// group keeps both the parsed item texts and the raw lines they came from.
// The raw lines are replayed on serialization so untouched groups survive
// round trips unchanged.
type group struct {
	name  string
	lines []string
	items []string
}

// Name returns the release's version label, or the pending token for the
// pending release.
func (r *Release) Name() string { return r.name }

// GroupNames returns the release's group names in file order. The empty
// string denotes the ungrouped bucket.
func (r *Release) GroupNames() []string {
	names := make([]string, len(r.groups))
	for i, g := range r.groups {
		names[i] = g.name
	}
	return names
}

// NonEmptyGroupNames returns the names of groups holding at least one item.
func (r *Release) NonEmptyGroupNames() []string {
	var names []string
	for _, g := range r.groups {
		if len(g.items) > 0 {
			names = append(names, g.name)
		}
	}
	return names
}

// ItemsInGroup returns the change items recorded under the named group,
// or an empty slice when the group is absent or empty.
func (r *Release) ItemsInGroup(name string) []string {
	for _, g := range r.groups {
		if g.name == name {
			return append([]string(nil), g.items...)
		}
	}
	return nil
}

// HasContent reports whether any group in the release holds at least one
// item. A release with no groups has no content.
func (r *Release) HasContent() bool {
	for _, g := range r.groups {
		if len(g.items) > 0 {
			return true
		}
	}
	return false
}

// DeleteGroup removes the named group and its lines from the release.
// Deleting an absent group is a no-op.
func (r *Release) DeleteGroup(name string) {
	for i, g := range r.groups {
		if g.name == name {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return
		}
	}
}

// AddGroups appends an empty group per name, in the given order, skipping
// names that already exist in the release. Repeated names add one group.
func (r *Release) AddGroups(names []string) {
	for _, name := range names {
		if r.hasGroup(name) {
			continue
		}
		r.groups = append(r.groups, &group{
			name:  name,
			lines: []string{" [" + name + "]", ""},
		})
	}
}

func (r *Release) hasGroup(name string) bool {
	for _, g := range r.groups {
		if g.name == name {
			return true
		}
	}
	return false
}

// deleteEmptyGroups drops every group with no items, the ungrouped bucket
// included.
func (r *Release) deleteEmptyGroups() {
	kept := r.groups[:0]
	for _, g := range r.groups {
		if len(g.items) > 0 {
			kept = append(kept, g)
		}
	}
	r.groups = kept
}

// Releases returns the document's releases oldest first, so the pending
// release, when present at the top of the file, is the last element.
func (d *Document) Releases() []*Release {
	out := make([]*Release, len(d.fileOrder))
	for i, r := range d.fileOrder {
		out[len(d.fileOrder)-1-i] = r
	}
	return out
}

// Pending returns the release whose header is the pending token, or nil.
func (d *Document) Pending() *Release {
	for _, r := range d.fileOrder {
		if r.name == d.pendingToken {
			return r
		}
	}
	return nil
}

// DeleteEmptyGroupsEverywhere drops empty groups from every release.
func (d *Document) DeleteEmptyGroupsEverywhere() {
	for _, r := range d.fileOrder {
		r.deleteEmptyGroups()
	}
}

// InsertPending prepends a fresh, empty pending section to the document
// and returns it. Callers stamp the old pending header first, then insert
// the new section and fill it with skeleton groups. No-op when a pending
// release already exists.
func (d *Document) InsertPending() *Release {
	if existing := d.Pending(); existing != nil {
		return existing
	}
	pending := &Release{
		header:  d.pendingToken,
		name:    d.pendingToken,
		preBody: []string{""},
	}
	d.fileOrder = append([]*Release{pending}, d.fileOrder...)
	return pending
}

// StampPending rewrites the pending release's header line to the given
// version and date, turning it into a released section. No-op when the
// document has no pending release.
func (d *Document) StampPending(version, date string) {
	pending := d.Pending()
	if pending == nil {
		return
	}
	pending.name = version
	pending.header = version + " " + date
}
