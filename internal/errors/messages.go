package errors

import "fmt"

// Common error messages for the relnext CLI.
// These templates ensure consistent, actionable error messages.

// NoProvidersRegistered creates an error for a release run configured with
// zero previous-version providers.
func NoProvidersRegistered() *CLIError {
	return NewConfigError(
		"no PreviousVersionProvider registered: at least one previous-version provider is required",
		"Enable the git-tag provider by running inside a git repository with version tags",
		"Or list providers explicitly in .relnext.yml, e.g. providers: [git-tag, changelog]",
	)
}

// NoPreviousVersion creates an error when every registered provider came up empty.
func NoPreviousVersion() *CLIError {
	return NewDataError(
		"no previous version found by any registered provider",
		"Tag the current release in git (e.g. git tag v0.1.0)",
		"Or record the last released version in the change file",
	)
}

// EmptyPendingRelease creates an error for a release with no recorded changes.
func EmptyPendingRelease(changeFile string) *CLIError {
	return NewDataError(
		fmt.Sprintf("change file has no content for next version (%s)", changeFile),
		"Add change items under the pending section before releasing",
		fmt.Sprintf("The pending section is the one headed by the placeholder token in %s", changeFile),
	)
}

// MissingChangeFile creates an error for an absent change file.
func MissingChangeFile(path string) *CLIError {
	return NewIOError(
		fmt.Sprintf("change file %s does not exist", path),
		"Create it with a pending section: printf '{{$NEXT}}\\n' > "+path,
		"Or point change_file at the right filename in .relnext.yml",
	)
}

// NoPendingSection creates an error for a change file without the
// placeholder release.
func NoPendingSection(token, path string) *CLIError {
	return NewParseError(
		fmt.Sprintf("change file %s has no pending section (expected a %q header)", path, token),
		fmt.Sprintf("Add a line containing only %s above the newest release", token),
	)
}
