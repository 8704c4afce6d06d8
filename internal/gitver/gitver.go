// Package gitver provides a previous-version provider backed by the
// enclosing git repository's tags. It uses go-git so relnext works without
// a git CLI installed.
package gitver

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/relnext/relnext/internal/semver"
)

// TagProvider answers with the highest version-shaped tag in the
// repository containing Path. Outside a repository, or in one with no
// version tags, it has no answer and the next provider is consulted.
type TagProvider struct {
	// Path is a directory inside the repository. Empty means the current
	// working directory.
	Path string
}

// PreviousVersion returns the highest semantic version among the
// repository's tags, without any "v" prefix.
func (p *TagProvider) PreviousVersion() (string, error) {
	repo, err := openRepo(p.Path)
	if err != nil {
		// Not being in a repository is a normal condition for this
		// provider, not a failure.
		return "", nil
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	var (
		best  semver.Version
		found bool
	)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		v, parseErr := semver.Parse(ref.Name().Short())
		if parseErr != nil {
			// Tags that are not versions (release names, markers) are
			// skipped, not fatal.
			return nil
		}
		if !found || semver.Compare(v, best) > 0 {
			best = v
			found = true
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	if !found {
		return "", nil
	}
	return best.String(), nil
}

// openRepo opens the repository at path or the current working directory,
// traversing up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}
