package config

import "github.com/relnext/relnext/internal/changes"

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relnext configuration
# Project config lives in .relnext.yml; environment overrides use RELNEXT_*.

change_file: Changes              # Changelog filename
pending_token: "{{$NEXT}}"        # Placeholder marking the pending release
numify_version: false             # Emit versions as 1.002003 instead of 1.2.3

# Category labels per version tier. Each accepts a list or a single
# comma-separated string.
major: [API CHANGES]
minor: [ENHANCEMENTS]
revision: [BUG FIXES, DOCUMENTATION]

# Previous-version providers, queried in order until one answers.
# Recognized: git-tag | changelog | file
providers: [git-tag, changelog]
version_file: ""                  # YAML file with a version key, for the file provider
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"change_file":    "Changes",
		"pending_token":  changes.DefaultPendingToken,
		"numify_version": false,
		"major":          []string{"API CHANGES"},
		"minor":          []string{"ENHANCEMENTS"},
		"revision":       []string{"BUG FIXES", "DOCUMENTATION"},
		// git tags answer first; the change file itself is the fallback.
		"providers":    []string{"git-tag", "changelog"},
		"version_file": "",
	}
}
