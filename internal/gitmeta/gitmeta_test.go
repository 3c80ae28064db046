package gitmeta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) (string, time.Time) {
	t.Helper()
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	rel := filepath.Join("content", "posts", "hello.md")
	abs := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte("Body\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filepath.ToSlash(rel))
	require.NoError(t, err)

	when := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	_, err = wt.Commit("add hello", &git.CommitOptions{
		Author:    &object.Signature{Name: "tester", Email: "t@example.com", When: when},
		Committer: &object.Signature{Name: "tester", Email: "t@example.com", When: when},
	})
	require.NoError(t, err)
	return root, when
}

func TestOpen_OutsideWorkTree_Errors(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
}

func TestLastModified_CommittedFile_ReturnsCommitterTime(t *testing.T) {
	root, when := initRepoWithCommit(t)

	r, err := Open(filepath.Join(root, "content"))
	require.NoError(t, err)

	got, ok := r.LastModified("posts/hello.md")
	require.True(t, ok)
	require.Equal(t, when.Unix(), got.Unix())
}

func TestLastModified_UntrackedFile_NotFound(t *testing.T) {
	root, _ := initRepoWithCommit(t)

	r, err := Open(filepath.Join(root, "content"))
	require.NoError(t, err)

	_, ok := r.LastModified("posts/untracked.md")
	require.False(t, ok)
}

func TestLastModified_ResultMemoized(t *testing.T) {
	root, _ := initRepoWithCommit(t)

	r, err := Open(filepath.Join(root, "content"))
	require.NoError(t, err)

	first, ok := r.LastModified("posts/hello.md")
	require.True(t, ok)
	second, ok := r.LastModified("posts/hello.md")
	require.True(t, ok)
	require.Equal(t, first, second)
}
