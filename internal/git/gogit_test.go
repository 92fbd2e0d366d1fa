package git

import (
	"errors"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/path")
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening git repository")
}

func TestOpen_ValidRepository(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)
	require.NotEmpty(t, repo.Path())
	require.Equal(t, tr.Path(), repo.WorkingDirectory())
	require.False(t, repo.IsBare())
}

func TestOpen_BareRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)
	require.True(t, repo.IsBare())
	require.Empty(t, repo.WorkingDirectory())

	// Bare repositories still expose a readable config store.
	src, err := repo.OpenConfig()
	require.NoError(t, err)
	_, err = src.Lookup("this.doesnt.exist")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestGoGitRepository_Head(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("initial")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	require.NotEmpty(t, head)
}

func TestOpenConfig_LookupPresent(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	src, err := repo.OpenConfig()
	require.NoError(t, err)

	entry, err := src.Lookup("user.name")
	require.NoError(t, err)
	require.True(t, entry.HasValue)
	require.Equal(t, "Test", entry.Value)
}

func TestOpenConfig_LookupMissing(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	src, err := repo.OpenConfig()
	require.NoError(t, err)

	_, err = src.Lookup("this.doesnt.exist")
	require.ErrorIs(t, err, ErrEntryNotFound)

	// Section exists, option does not.
	_, err = src.Lookup("user.nonexistent")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestOpenConfig_LookupCustomSection(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.SetConfigValue("status", "", "showUntrackedFiles", "no")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	src, err := repo.OpenConfig()
	require.NoError(t, err)

	entry, err := src.Lookup("status.showUntrackedFiles")
	require.NoError(t, err)
	require.True(t, entry.HasValue)
	require.Equal(t, "no", entry.Value)
}

func TestOpenConfig_LookupSubsection(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.SetConfigValue("filter", "lfs", "clean", "git-lfs clean -- %f")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	src, err := repo.OpenConfig()
	require.NoError(t, err)

	entry, err := src.Lookup("filter.lfs.clean")
	require.NoError(t, err)
	require.Equal(t, "git-lfs clean -- %f", entry.Value)

	_, err = src.Lookup("filter.other.clean")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestOpenConfig_LookupInvalidKey(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	src, err := repo.OpenConfig()
	require.NoError(t, err)

	_, err = src.Lookup("nodots")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrEntryNotFound))
}

func TestOpenConfig_RereadsStore(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	src, err := repo.OpenConfig()
	require.NoError(t, err)
	_, err = src.Lookup("push.default")
	require.ErrorIs(t, err, ErrEntryNotFound)

	tr.SetConfigValue("push", "", "default", "current")

	// A fresh source sees the external edit.
	src, err = repo.OpenConfig()
	require.NoError(t, err)
	entry, err := src.Lookup("push.default")
	require.NoError(t, err)
	require.Equal(t, "current", entry.Value)
}
