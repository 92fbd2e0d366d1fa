package settings

import (
	"fmt"
	"strings"
)

// StoreAccessError reports that the repository configuration store could not
// be opened or read. Missing keys are never reported through this type;
// absence is a normal outcome.
type StoreAccessError struct {
	Err error
}

func (e *StoreAccessError) Error() string {
	return fmt.Sprintf("opening git configuration: %v", e.Err)
}

func (e *StoreAccessError) Unwrap() error {
	return e.Err
}

// MalformedValueError reports a configuration value that does not match any
// recognized token for its key.
type MalformedValueError struct {
	Key   string
	Value string
	Valid []string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value for %s: %s, must be one of %s",
		e.Key, e.Value, joinOr(e.Valid))
}

func joinOr(tokens []string) string {
	if len(tokens) < 2 {
		return strings.Join(tokens, "")
	}
	return strings.Join(tokens[:len(tokens)-1], ", ") + " or " + tokens[len(tokens)-1]
}
