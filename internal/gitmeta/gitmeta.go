// Package gitmeta resolves per-file git history metadata when the
// content tree lives inside a git work tree. Documents get a lastmod
// timestamp from their most recent commit.
package gitmeta

import (
	"path/filepath"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
)

// Resolver answers last-commit queries for files under a source
// directory. Lookups are memoized; git log walks are not cheap.
type Resolver struct {
	repo   *git.Repository
	prefix string // source dir relative to the work tree root, "" when equal

	mu    sync.Mutex
	cache map[string]time.Time
}

// Open locates the repository enclosing sourceDir. Returns an error
// when sourceDir is not inside a git work tree; callers treat that as
// "no git metadata" rather than a failure.
func Open(sourceDir string) (*Resolver, error) {
	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}

	prefix, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return nil, err
	}
	if prefix == "." {
		prefix = ""
	}

	return &Resolver{
		repo:   repo,
		prefix: filepath.ToSlash(prefix),
		cache:  map[string]time.Time{},
	}, nil
}

// LastModified returns the committer time of the most recent commit
// touching relPath (relative to the source dir). ok is false for files
// with no history (untracked or never committed).
func (r *Resolver) LastModified(relPath string) (time.Time, bool) {
	repoPath := relPath
	if r.prefix != "" {
		repoPath = r.prefix + "/" + relPath
	}

	r.mu.Lock()
	if t, ok := r.cache[repoPath]; ok {
		r.mu.Unlock()
		return t, !t.IsZero()
	}
	r.mu.Unlock()

	var found time.Time
	iter, err := r.repo.Log(&git.LogOptions{
		FileName: &repoPath,
		Order:    git.LogOrderCommitterTime,
	})
	if err == nil {
		if commit, err := iter.Next(); err == nil {
			found = commit.Committer.When
		}
		iter.Close()
	}

	r.mu.Lock()
	r.cache[repoPath] = found
	r.mu.Unlock()
	return found, !found.IsZero()
}
