package internal

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// openRepository opens the repository read-only for history inspection.
// All mutating operations go through the command runner instead.
func openRepository(path string) (*git.Repository, error) {
	dotGit := osfs.New(filepath.Join(path, git.GitDirName))
	worktree := osfs.New(path)

	repo, err := git.Open(filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault()), worktree)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", path, err)
	}

	return repo, nil
}
