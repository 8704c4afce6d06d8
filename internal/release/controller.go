// Package release orchestrates the release lifecycle around a Changes
// file: munge the pending section, validate it has content, compute the
// next version from the recorded change categories, and rewrite the file
// with a fresh skeleton once the release is out.
//
// The controller is single-threaded. Hooks fire in strict sequence for
// one release at a time, and a failed hook aborts the run with no
// rollback of edits already applied.
package release

import (
	errs "errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/relnext/relnext/internal/bump"
	"github.com/relnext/relnext/internal/category"
	"github.com/relnext/relnext/internal/changes"
	"github.com/relnext/relnext/internal/errors"
	"github.com/relnext/relnext/internal/semver"
)

// EnvOverride names the environment variable that bypasses version
// computation entirely. When set, its value is used verbatim.
const EnvOverride = "V"

// State tracks the controller's progress through the lifecycle.
type State int

const (
	Idle State = iota
	Munged
	Validated
	Versioned
	Finalized
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Munged:
		return "munged"
	case Validated:
		return "validated"
	case Versioned:
		return "versioned"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	// ChangeFile is the changelog path on disk.
	ChangeFile string
	// PendingToken marks the pending release header. Defaults to
	// changes.DefaultPendingToken.
	PendingToken string
	// Numify stores the computed version in numeric form (1.002003)
	// instead of dotted form (1.2.3).
	Numify bool
	// Categories maps changelog group names to version tiers.
	Categories category.Set
	// Providers are queried in order for the previous version.
	Providers []PreviousVersionProvider
	// Now supplies the release date for header stamping. Defaults to
	// time.Now.
	Now func() time.Time
	// Getenv looks up the version override variable. Defaults to
	// os.Getenv.
	Getenv func(string) string
}

// Controller drives the release lifecycle. The in-memory content and the
// on-disk file are distinct resources: Munge, BeforeRelease and
// ProvideVersion operate on the in-memory copy; AfterRelease re-reads the
// persisted file.
type Controller struct {
	opts    Options
	state   State
	content string
	version string
}

// New builds a Controller. Zero-value options fall back to defaults.
func New(opts Options) *Controller {
	if opts.ChangeFile == "" {
		opts.ChangeFile = "Changes"
	}
	if opts.PendingToken == "" {
		opts.PendingToken = changes.DefaultPendingToken
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	return &Controller{opts: opts}
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State { return c.state }

// Content returns the in-memory changelog content.
func (c *Controller) Content() string { return c.content }

// SetContent replaces the in-memory changelog content. Hosts that manage
// the file themselves hand the content over through this instead of Load.
func (c *Controller) SetContent(text string) { c.content = text }

// Load reads the change file from disk into the in-memory representation.
func (c *Controller) Load() error {
	data, err := os.ReadFile(c.opts.ChangeFile)
	if err != nil {
		if errs.Is(err, fs.ErrNotExist) {
			return errors.MissingChangeFile(c.opts.ChangeFile)
		}
		return errors.WrapWithMessage(err, errors.IO, "reading change file")
	}
	c.content = string(data)
	return nil
}

// Munge normalizes the in-memory content: every empty group is removed
// from the pending release. The file on disk is not touched.
func (c *Controller) Munge() error {
	if c.state != Idle {
		return c.stateError("munge", Idle)
	}

	doc, pending, err := c.parseContent()
	if err != nil {
		return err
	}

	for _, name := range pending.GroupNames() {
		if len(pending.ItemsInGroup(name)) == 0 {
			pending.DeleteGroup(name)
		}
	}

	c.content = doc.Serialize()
	c.state = Munged
	return nil
}

// BeforeRelease verifies the pending release records at least one change.
// A pending section with no groups, or only empty groups, fails the run.
func (c *Controller) BeforeRelease() error {
	if c.state != Munged {
		return c.stateError("before-release", Munged)
	}

	_, pending, err := c.parseContent()
	if err != nil {
		return err
	}
	if !pending.HasContent() {
		return errors.EmptyPendingRelease(c.opts.ChangeFile)
	}

	c.state = Validated
	return nil
}

// ProvideVersion computes the next version and stores it in the
// controller's version slot. The result is cached; repeated calls return
// the same value. It may be queried lazily from any state and does not
// advance the lifecycle on its own, except to mark a validated run as
// versioned.
func (c *Controller) ProvideVersion() (string, error) {
	if c.version != "" {
		return c.version, nil
	}

	if override := c.opts.Getenv(EnvOverride); override != "" {
		c.setVersion(override)
		return c.version, nil
	}

	previous, err := c.previousVersion()
	if err != nil {
		return "", err
	}

	prev, err := semver.Parse(previous)
	if err != nil {
		return "", errors.Wrap(err, errors.Parse)
	}

	_, pending, err := c.parseContent()
	if err != nil {
		return "", err
	}

	decision := bump.Next(prev, pending.NonEmptyGroupNames(), c.opts.Categories)
	if c.opts.Numify {
		c.setVersion(decision.Next.Numify())
	} else {
		c.setVersion(decision.Next.String())
	}
	return c.version, nil
}

// AfterRelease re-loads the change file from disk, strips empty groups
// document-wide, regenerates the empty category skeleton on the pending
// section and rewrites the file in place. The disk copy is authoritative
// here: the host is assumed to have persisted the released content already.
func (c *Controller) AfterRelease() error {
	if c.state != Validated && c.state != Versioned {
		return c.stateError("after-release", Validated)
	}

	doc, err := changes.Load(c.opts.ChangeFile, c.opts.PendingToken)
	if err != nil {
		return errors.Wrap(err, errors.IO)
	}

	c.finalize(doc)

	if err := c.writeFile(doc.Serialize()); err != nil {
		return err
	}

	c.state = Finalized
	return nil
}

// Run executes the full lifecycle against the change file on disk and
// returns the released version: load, munge, validate, compute the
// version, stamp the pending header with it, persist, then rewrite with a
// fresh skeleton.
func (c *Controller) Run() (string, error) {
	if err := c.Load(); err != nil {
		return "", err
	}
	if err := c.Munge(); err != nil {
		return "", err
	}
	if err := c.BeforeRelease(); err != nil {
		return "", err
	}
	version, err := c.ProvideVersion()
	if err != nil {
		return "", err
	}

	if err := c.stampContent(version); err != nil {
		return "", err
	}
	if err := c.writeFile(c.content); err != nil {
		return "", err
	}

	if err := c.AfterRelease(); err != nil {
		return "", err
	}
	return version, nil
}

// Preview runs the same pipeline as Run but never touches the disk. It
// returns the file content a release would produce and the version.
func (c *Controller) Preview() (string, string, error) {
	if err := c.Load(); err != nil {
		return "", "", err
	}
	if err := c.Munge(); err != nil {
		return "", "", err
	}
	if err := c.BeforeRelease(); err != nil {
		return "", "", err
	}
	version, err := c.ProvideVersion()
	if err != nil {
		return "", "", err
	}
	if err := c.stampContent(version); err != nil {
		return "", "", err
	}

	doc, err := changes.Parse(c.content, c.opts.PendingToken)
	if err != nil {
		return "", "", errors.Wrap(err, errors.Parse)
	}
	c.finalize(doc)
	return doc.Serialize(), version, nil
}

// finalize applies the post-release edits: drop empty groups everywhere,
// then rebuild the empty category skeleton on the pending section in
// major, minor, revision order.
func (c *Controller) finalize(doc *changes.Document) {
	doc.DeleteEmptyGroupsEverywhere()

	pending := doc.Pending()
	if pending == nil {
		pending = doc.InsertPending()
	}

	labels := c.opts.Categories.AllLabels()
	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = label.Name
	}
	pending.AddGroups(names)
}

// stampContent replaces the pending header in the in-memory content with
// the released version and today's date.
func (c *Controller) stampContent(version string) error {
	doc, _, err := c.parseContent()
	if err != nil {
		return err
	}
	doc.StampPending(version, c.opts.Now().Format("2006-01-02"))
	c.content = doc.Serialize()
	return nil
}

// previousVersion queries the registered providers in order.
func (c *Controller) previousVersion() (string, error) {
	if len(c.opts.Providers) == 0 {
		return "", errors.NoProvidersRegistered()
	}
	for _, provider := range c.opts.Providers {
		version, err := provider.PreviousVersion()
		if err != nil {
			return "", errors.Wrap(err, errors.Data)
		}
		if version != "" {
			return version, nil
		}
	}
	return "", errors.NoPreviousVersion()
}

// writeFile rewrites the change file with a truncating write. Close errors
// surface buffered-write failures and are treated as authoritative.
func (c *Controller) writeFile(text string) error {
	f, err := os.OpenFile(c.opts.ChangeFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.WrapWithMessage(err, errors.IO, "opening change file for rewrite")
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return errors.WrapWithMessage(err, errors.IO, "writing change file")
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithMessage(err, errors.IO, "closing change file")
	}
	return nil
}

func (c *Controller) parseContent() (*changes.Document, *changes.Release, error) {
	doc, err := changes.Parse(c.content, c.opts.PendingToken)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.Parse)
	}
	pending := doc.Pending()
	if pending == nil {
		return nil, nil, errors.NoPendingSection(c.opts.PendingToken, c.opts.ChangeFile)
	}
	return doc, pending, nil
}

func (c *Controller) setVersion(version string) {
	c.version = version
	if c.state == Validated {
		c.state = Versioned
	}
}

func (c *Controller) stateError(hook string, expected State) error {
	return errors.NewConfigError(
		fmt.Sprintf("%s invoked in state %q, expected %q", hook, c.state, expected),
		"Lifecycle hooks must run in order: munge, before-release, after-release",
	)
}
