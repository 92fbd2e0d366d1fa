package git

import "errors"

// ErrEntryNotFound is returned by ConfigSource.Lookup when the key's section
// or option does not exist in any configuration scope.
var ErrEntryNotFound = errors.New("config entry not found")

// Repository provides read-only access to a git repository and its
// configuration store. This is the key abstraction point for testing and
// backend swapping.
type Repository interface {
	// Path returns the path to the .git directory.
	Path() string

	// WorkingDirectory returns the path to the working directory.
	// Empty for bare repositories.
	WorkingDirectory() string

	// IsBare returns true if the repository has no working directory.
	IsBare() bool

	// Head returns the short name of the current HEAD reference.
	Head() (string, error)

	// OpenConfig acquires the repository's layered configuration store.
	// Acquisition itself can fail, e.g. when a config file is corrupt.
	OpenConfig() (ConfigSource, error)
}

// ConfigSource is a single read-only view of the repository configuration,
// merged across system, global and local scopes.
type ConfigSource interface {
	// Lookup resolves a dotted key (e.g. "user.name") to an Entry.
	// A missing key is reported as ErrEntryNotFound; callers that treat
	// absence as a normal outcome should not surface that error.
	Lookup(key string) (Entry, error)
}

// Entry is a single key's resolution result. A key can exist structurally
// without carrying a value, in which case HasValue is false.
type Entry struct {
	Key      string
	Value    string
	HasValue bool
}
