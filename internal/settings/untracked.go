package settings

import "github.com/MyCarrier-DevOps/go-gitconfig/internal/git"

// UntrackedFilesMode represents the status.showUntrackedFiles git setting,
// which controls how unversioned files are reported in status output.
type UntrackedFilesMode int

const (
	UntrackedFilesNone UntrackedFilesMode = iota
	UntrackedFilesNormal
	UntrackedFilesAll
)

func (m UntrackedFilesMode) String() string {
	switch m {
	case UntrackedFilesNone:
		return "no"
	case UntrackedFilesNormal:
		return "normal"
	case UntrackedFilesAll:
		return "all"
	default:
		return "unknown"
	}
}

// IncludesNone reports whether untracked files are excluded entirely.
func (m UntrackedFilesMode) IncludesNone() bool {
	return m == UntrackedFilesNone
}

// IncludesUntracked reports whether untracked files appear in status output.
func (m UntrackedFilesMode) IncludesUntracked() bool {
	return m == UntrackedFilesNormal || m == UntrackedFilesAll
}

// RecursesUntrackedDirs reports whether untracked directories are listed
// file by file instead of as a single entry.
func (m UntrackedFilesMode) RecursesUntrackedDirs() bool {
	return m == UntrackedFilesAll
}

// ResolveUntrackedFilesMode reads status.showUntrackedFiles and maps it to
// an UntrackedFilesMode. Only "no" and "normal" are matched; everything
// else, including an unset key, resolves to UntrackedFilesAll.
//
// Git documents the default as "normal". The fallback here stays "all"
// because the status layer underneath already applies the normal restriction
// on its own; defaulting to normal twice would hide files that should be
// shown. Unrecognized values take the same fallback rather than erroring.
func ResolveUntrackedFilesMode(repo git.Repository) (UntrackedFilesMode, error) {
	v, err := GetString(repo, ShowUntrackedFilesKey)
	if err != nil {
		return UntrackedFilesNone, err
	}

	if v != nil {
		switch *v {
		case "no":
			return UntrackedFilesNone, nil
		case "normal":
			return UntrackedFilesNormal, nil
		}
	}

	return UntrackedFilesAll, nil
}
