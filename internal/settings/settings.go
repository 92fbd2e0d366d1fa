// Package settings resolves git repository configuration keys into
// strongly-typed values. It shields callers from raw string parsing and from
// the store's habit of reporting "key not set" through its error channel.
package settings

import (
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/git"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/trace"
)

// Configuration keys resolved by this package.
// See https://git-scm.com/docs/git-config for their vocabularies.
const (
	ShowUntrackedFilesKey = "status.showUntrackedFiles"
	PushDefaultKey        = "push.default"
)

// GetString reads a single configuration key from the repository's layered
// store. A nil result means the key is not set or carries no value. Only a
// failure to open the store is surfaced as an error (*StoreAccessError); a
// failed lookup is folded into absence, because the store raises the same
// error class for ordinary unset keys as for genuine lookup failures.
func GetString(repo git.Repository, key string) (*string, error) {
	defer trace.Scope("settings.get_config_string", "key", key)()

	src, err := repo.OpenConfig()
	if err != nil {
		return nil, &StoreAccessError{Err: err}
	}

	entry, err := src.Lookup(key)
	if err != nil {
		return nil, nil
	}
	if !entry.HasValue {
		return nil, nil
	}

	v := entry.Value
	return &v, nil
}
