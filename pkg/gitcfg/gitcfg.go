// Package gitcfg provides a public Go API for resolving git repository
// configuration settings into typed values.
//
// Basic usage:
//
//	mode, err := gitcfg.UntrackedFiles("/path/to/repo")
//	if err != nil {
//	    return err
//	}
//	if mode.RecursesUntrackedDirs() {
//	    // list untracked directories file by file
//	}
package gitcfg

import (
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/git"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/output"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/settings"
)

// Re-exported result and error types. Use errors.As with the error types to
// distinguish an unreadable store from a malformed push.default value.
type (
	UntrackedFilesMode  = settings.UntrackedFilesMode
	PushDefaultStrategy = settings.PushDefaultStrategy
	StoreAccessError    = settings.StoreAccessError
	MalformedValueError = settings.MalformedValueError
	Report              = output.Report
)

const (
	UntrackedFilesNone   = settings.UntrackedFilesNone
	UntrackedFilesNormal = settings.UntrackedFilesNormal
	UntrackedFilesAll    = settings.UntrackedFilesAll

	PushDefaultSimple   = settings.PushDefaultSimple
	PushDefaultNothing  = settings.PushDefaultNothing
	PushDefaultCurrent  = settings.PushDefaultCurrent
	PushDefaultUpstream = settings.PushDefaultUpstream
	PushDefaultMatching = settings.PushDefaultMatching
)

// GetConfigString reads a single raw configuration key from the repository
// at path. A nil result means the key is not set; only an unreadable
// repository or store is an error.
func GetConfigString(path, key string) (*string, error) {
	repo, err := open(path)
	if err != nil {
		return nil, err
	}
	return settings.GetString(repo, key)
}

// UntrackedFiles resolves the status.showUntrackedFiles setting for the
// repository at path.
func UntrackedFiles(path string) (UntrackedFilesMode, error) {
	repo, err := open(path)
	if err != nil {
		return UntrackedFilesNone, err
	}
	return settings.ResolveUntrackedFilesMode(repo)
}

// PushDefault resolves the push.default setting for the repository at path.
func PushDefault(path string) (PushDefaultStrategy, error) {
	repo, err := open(path)
	if err != nil {
		return PushDefaultSimple, err
	}
	return settings.ResolvePushDefaultStrategy(repo)
}

// Resolve resolves both typed settings plus any extra raw keys and returns
// them as a single Report.
func Resolve(path string, extraKeys ...string) (Report, error) {
	repo, err := open(path)
	if err != nil {
		return Report{}, err
	}

	mode, err := settings.ResolveUntrackedFilesMode(repo)
	if err != nil {
		return Report{}, err
	}

	strategy, err := settings.ResolvePushDefaultStrategy(repo)
	if err != nil {
		return Report{}, err
	}

	var extra map[string]*string
	if len(extraKeys) > 0 {
		extra = make(map[string]*string, len(extraKeys))
		for _, key := range extraKeys {
			v, err := settings.GetString(repo, key)
			if err != nil {
				return Report{}, err
			}
			extra[key] = v
		}
	}

	// Branch is informational only; an unborn HEAD leaves it empty.
	branch, _ := repo.Head()

	reportPath := repo.WorkingDirectory()
	if repo.IsBare() {
		reportPath = repo.Path()
	}

	return output.NewReport(reportPath, branch, mode, strategy, extra), nil
}

// open opens the repository at path. Failures are reported as store-access
// errors: an unopenable repository and an unreadable store are the same
// condition to callers of this package.
func open(path string) (git.Repository, error) {
	repo, err := git.Open(path)
	if err != nil {
		return nil, &settings.StoreAccessError{Err: err}
	}
	return repo, nil
}
