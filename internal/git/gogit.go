package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository implements Repository using go-git.
type GoGitRepository struct {
	repo    *gogit.Repository
	path    string
	workDir string
	bare    bool
}

// Open opens a git repository at the given path.
func Open(path string) (*GoGitRepository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	switch {
	case err == nil:
		root := wt.Filesystem.Root()
		return &GoGitRepository{
			repo:    r,
			path:    filepath.Join(root, ".git"),
			workDir: root,
		}, nil
	case errors.Is(err, gogit.ErrIsBareRepository):
		return &GoGitRepository{repo: r, path: path, bare: true}, nil
	default:
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
}

func (r *GoGitRepository) Path() string {
	return r.path
}

func (r *GoGitRepository) WorkingDirectory() string {
	return r.workDir
}

func (r *GoGitRepository) IsBare() bool {
	return r.bare
}

func (r *GoGitRepository) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	return ref.Name().Short(), nil
}

// OpenConfig reads the repository configuration merged across the system,
// global and local scopes. Every call re-reads the store; results are never
// cached, so external edits are picked up by the next call.
func (r *GoGitRepository) OpenConfig() (ConfigSource, error) {
	cfg, err := r.repo.ConfigScoped(gogitconfig.SystemScope)
	if err != nil {
		return nil, fmt.Errorf("reading repository configuration: %w", err)
	}

	raw := cfg.Raw
	if raw == nil {
		raw = format.New()
	}
	return &goGitConfigSource{raw: raw}, nil
}

// goGitConfigSource resolves dotted keys against go-git's parsed
// representation of the configuration files.
type goGitConfigSource struct {
	raw *format.Config
}

var _ ConfigSource = (*goGitConfigSource)(nil)

func (s *goGitConfigSource) Lookup(key string) (Entry, error) {
	section, subsection, name, err := SplitKey(key)
	if err != nil {
		return Entry{}, err
	}

	if !s.raw.HasSection(section) {
		return Entry{}, ErrEntryNotFound
	}

	sec := s.raw.Section(section)
	if subsection != "" {
		if !sec.HasSubsection(subsection) {
			return Entry{}, ErrEntryNotFound
		}
		sub := sec.Subsection(subsection)
		if !sub.HasOption(name) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{Key: key, Value: sub.Option(name), HasValue: true}, nil
	}

	if !sec.HasOption(name) {
		return Entry{}, ErrEntryNotFound
	}
	return Entry{Key: key, Value: sec.Option(name), HasValue: true}, nil
}
