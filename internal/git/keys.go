// Package git provides the git abstraction layer for configuration
// resolution. It defines the Repository and ConfigSource interfaces, a
// go-git backed implementation, and a configurable mock for tests.
package git

import (
	"fmt"
	"strings"
)

// SplitKey splits a dotted configuration key into section, subsection and
// option name. Keys have at least two segments; any middle segments form the
// subsection (git allows dots inside subsection names, e.g.
// "branch.release/1.0.merge").
func SplitKey(key string) (section, subsection, name string, err error) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", "", fmt.Errorf("invalid config key %q", key)
	}

	section = key[:first]
	name = key[last+1:]
	if first != last {
		subsection = key[first+1 : last]
	}
	return section, subsection, name, nil
}
