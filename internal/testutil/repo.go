// Package testutil provides helpers for creating temporary git repositories
// with controlled configuration for testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a builder for creating temporary git repositories with a
// controlled configuration store and commit history.
type TestRepo struct {
	t    testing.TB
	path string
	repo *gogit.Repository
	time time.Time
}

// NewTestRepo creates and initializes a new git repository in a temporary
// directory. The local config carries a user identity, matching what
// interactive `git init` setups have.
func NewTestRepo(t testing.TB) *TestRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	r := &TestRepo{
		t:    t,
		path: dir,
		repo: repo,
		time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	r.SetUser("Test", "test@example.com")
	return r
}

// Path returns the repository root directory.
func (r *TestRepo) Path() string {
	return r.path
}

// SetUser writes user.name and user.email to the local config.
func (r *TestRepo) SetUser(name, email string) {
	r.t.Helper()

	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.User.Name = name
	cfg.User.Email = email
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// SetConfigValue writes an arbitrary key to the local config. Subsection may
// be empty for two-segment keys like status.showUntrackedFiles.
func (r *TestRepo) SetConfigValue(section, subsection, name, value string) {
	r.t.Helper()

	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	if subsection != "" {
		cfg.Raw.Section(section).Subsection(subsection).SetOption(name, value)
	} else {
		cfg.Raw.Section(section).SetOption(name, value)
	}
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// UnsetConfigValue removes a key from the local config if present.
func (r *TestRepo) UnsetConfigValue(section, name string) {
	r.t.Helper()

	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.Raw.Section(section).RemoveOption(name)
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// AddCommit creates a new commit with the given message. A file named after
// the commit time is created to ensure each commit has changes.
// Returns the commit SHA.
func (r *TestRepo) AddCommit(message string) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	filename := fmt.Sprintf("file-%d.txt", r.time.Unix())
	path := filepath.Join(r.path, filename)
	if err := os.WriteFile(path, []byte(message), 0o644); err != nil {
		r.t.Fatalf("writing file: %v", err)
	}

	if _, err := wt.Add(filename); err != nil {
		r.t.Fatalf("staging file: %v", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  r.time,
		},
	})
	if err != nil {
		r.t.Fatalf("committing: %v", err)
	}

	return hash.String()
}

// WriteToolConfig writes a go-gitconfig.yml file in the repo root.
func (r *TestRepo) WriteToolConfig(content string) {
	r.t.Helper()
	path := filepath.Join(r.path, "go-gitconfig.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing tool config: %v", err)
	}
}
