// Package config provides hierarchical configuration management for
// relnext using koanf. Configuration is loaded with priority: environment
// variables > project config (.relnext.yml) > user config
// (~/.config/relnext/config.yml) > defaults. A legacy JSON project config
// (.relnext.json) is still read when no YAML config exists.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/relnext/relnext/internal/category"
	"github.com/relnext/relnext/internal/changes"
)

// envPrefix namespaces relnext environment overrides, e.g.
// RELNEXT_CHANGE_FILE or RELNEXT_NUMIFY_VERSION. The bare V override for
// the computed version is handled by the release controller, not here.
const envPrefix = "RELNEXT_"

// Configuration holds the relnext settings. It is built once at startup
// and passed by reference to each command; nothing mutates it afterwards.
type Configuration struct {
	// ChangeFile is the changelog filename.
	ChangeFile string `koanf:"change_file"`
	// NumifyVersion emits computed versions in numeric form (1.002003).
	NumifyVersion bool `koanf:"numify_version"`
	// PendingToken marks the pending release header in the change file.
	PendingToken string `koanf:"pending_token"`
	// VersionFile optionally points at a YAML metadata file with a
	// "version" key, consulted by the file previous-version provider.
	VersionFile string `koanf:"version_file"`

	// Major, Minor and Revision are the category labels per tier. Each
	// accepts either a list or a single comma-separated string, so they
	// are coerced by hand after unmarshaling instead of decoded directly.
	Major    []string `koanf:"-"`
	Minor    []string `koanf:"-"`
	Revision []string `koanf:"-"`

	// Providers lists previous-version providers in query order.
	// Recognized names: git-tag, changelog, file.
	Providers []string `koanf:"-"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relnext.yml).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if userPath, err := UserConfigPath(); err == nil && fileExists(userPath) {
		if err := k.Load(file.Provider(userPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading user config %s: %w", userPath, err)
		}
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	return finalizeConfig(k)
}

// loadProjectConfig loads the project config, YAML preferred, falling back
// to the legacy JSON file with a migration warning.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	switch {
	case fileExists(yamlPath):
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading project config %s: %w", yamlPath, err)
		}
	case customPath == "" && fileExists(legacyPath):
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: using deprecated JSON config at %s; move it to %s\n", legacyPath, yamlPath)
		}
	}
	return nil
}

// envTransform maps RELNEXT_CHANGE_FILE to change_file.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// finalizeConfig unmarshals the simple fields and coerces the free-text
// label lists, which may arrive as lists or comma-separated strings.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Major = labelList(k, "major")
	cfg.Minor = labelList(k, "minor")
	cfg.Revision = labelList(k, "revision")
	cfg.Providers = labelList(k, "providers")

	if cfg.ChangeFile == "" {
		cfg.ChangeFile = "Changes"
	}
	if cfg.PendingToken == "" {
		cfg.PendingToken = changes.DefaultPendingToken
	}
	return &cfg, nil
}

// labelList reads a key that holds either a string list or a single
// comma-separated string.
func labelList(k *koanf.Koanf, key string) []string {
	switch v := k.Get(key).(type) {
	case string:
		return category.SplitLabels(v)
	case []string:
		return v
	case []interface{}:
		var labels []string
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				labels = append(labels, strings.TrimSpace(s))
			}
		}
		return labels
	default:
		return nil
	}
}

// Categories builds the tier label set from the configuration.
func (c *Configuration) Categories() category.Set {
	return category.NewSet(c.Major, c.Minor, c.Revision)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
