package release

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/relnext/relnext/internal/changes"
)

// PreviousVersionProvider yields the version the next release follows.
// Providers are queried in registration order; the first non-empty answer
// wins. Returning "" with a nil error means this provider has no answer
// and the next one should be tried.
type PreviousVersionProvider interface {
	PreviousVersion() (string, error)
}

// ChangelogProvider reads the previous version from the change file
// itself: the newest release section that is not the pending placeholder.
type ChangelogProvider struct {
	Path         string
	PendingToken string
}

// PreviousVersion returns the newest released version label in the change
// file, or "" when the file holds no released sections yet.
func (p *ChangelogProvider) PreviousVersion() (string, error) {
	doc, err := changes.Load(p.Path, p.PendingToken)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	pending := doc.Pending()
	releases := doc.Releases()
	for i := len(releases) - 1; i >= 0; i-- {
		if releases[i] != pending {
			return releases[i].Name(), nil
		}
	}
	return "", nil
}

// FileProvider reads the previous version from a YAML metadata file with a
// top-level "version" key.
type FileProvider struct {
	Path string
}

type versionFile struct {
	Version string `yaml:"version"`
}

// PreviousVersion returns the version recorded in the metadata file, or ""
// when the file does not exist.
func (p *FileProvider) PreviousVersion() (string, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading version file: %w", err)
	}

	var vf versionFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return "", fmt.Errorf("parsing version file %s: %w", p.Path, err)
	}
	return vf.Version, nil
}

// StaticProvider always answers with a fixed version string. Used in tests
// and for pinning a previous version from the command line.
type StaticProvider struct {
	Version string
}

// PreviousVersion returns the fixed version.
func (p *StaticProvider) PreviousVersion() (string, error) {
	return p.Version, nil
}
