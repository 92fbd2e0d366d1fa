// Package output renders resolved repository settings for the CLI and the
// public API.
package output

import (
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/settings"
)

// Report holds every resolved setting for one repository, plus any extra raw
// keys the caller asked for. Extra values are pointers so that unset keys
// render as null in JSON instead of disappearing.
type Report struct {
	Path           string               `json:"path"`
	Branch         string               `json:"branch,omitempty"`
	UntrackedFiles UntrackedFilesReport `json:"untrackedFiles"`
	PushDefault    string               `json:"pushDefault"`
	Extra          map[string]*string   `json:"extra,omitempty"`
}

// UntrackedFilesReport is the resolved untracked-files mode together with
// its derived predicates.
type UntrackedFilesReport struct {
	Mode                  string `json:"mode"`
	IncludesNone          bool   `json:"includesNone"`
	IncludesUntracked     bool   `json:"includesUntracked"`
	RecursesUntrackedDirs bool   `json:"recursesUntrackedDirs"`
}

// NewReport assembles a Report from resolved settings.
func NewReport(path, branch string, mode settings.UntrackedFilesMode, strategy settings.PushDefaultStrategy, extra map[string]*string) Report {
	return Report{
		Path:   path,
		Branch: branch,
		UntrackedFiles: UntrackedFilesReport{
			Mode:                  mode.String(),
			IncludesNone:          mode.IncludesNone(),
			IncludesUntracked:     mode.IncludesUntracked(),
			RecursesUntrackedDirs: mode.RecursesUntrackedDirs(),
		},
		PushDefault: strategy.String(),
		Extra:       extra,
	}
}
