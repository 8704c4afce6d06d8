package cli

import (
	"fmt"

	"github.com/relnext/relnext/internal/config"
	"github.com/relnext/relnext/internal/errors"
	"github.com/relnext/relnext/internal/gitver"
	"github.com/relnext/relnext/internal/release"
)

// buildController assembles a lifecycle controller from the configuration.
// previousOverride, when non-empty, pins the previous version instead of
// querying the configured providers.
func buildController(cfg *config.Configuration, previousOverride string) (*release.Controller, error) {
	providers, err := buildProviders(cfg, previousOverride)
	if err != nil {
		return nil, err
	}

	return release.New(release.Options{
		ChangeFile:   cfg.ChangeFile,
		PendingToken: cfg.PendingToken,
		Numify:       cfg.NumifyVersion,
		Categories:   cfg.Categories(),
		Providers:    providers,
	}), nil
}

func buildProviders(cfg *config.Configuration, previousOverride string) ([]release.PreviousVersionProvider, error) {
	if previousOverride != "" {
		return []release.PreviousVersionProvider{
			&release.StaticProvider{Version: previousOverride},
		}, nil
	}

	var providers []release.PreviousVersionProvider
	for _, name := range cfg.Providers {
		switch name {
		case "git-tag":
			providers = append(providers, &gitver.TagProvider{})
		case "changelog":
			providers = append(providers, &release.ChangelogProvider{
				Path:         cfg.ChangeFile,
				PendingToken: cfg.PendingToken,
			})
		case "file":
			if cfg.VersionFile == "" {
				return nil, errors.NewConfigError(
					"the file provider requires version_file to be set",
					"Point version_file at a YAML file with a version key in .relnext.yml",
				)
			}
			providers = append(providers, &release.FileProvider{Path: cfg.VersionFile})
		default:
			return nil, errors.NewConfigError(
				fmt.Sprintf("unknown previous-version provider %q", name),
				"Recognized providers: git-tag, changelog, file",
			)
		}
	}
	return providers, nil
}
