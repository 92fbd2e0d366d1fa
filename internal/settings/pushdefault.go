package settings

import "github.com/MyCarrier-DevOps/go-gitconfig/internal/git"

// PushDefaultStrategy represents the push.default git setting, which
// controls the remote branch a push targets when none is given explicitly.
// The zero value is PushDefaultSimple, git's own default since 2.0.
type PushDefaultStrategy int

const (
	PushDefaultSimple PushDefaultStrategy = iota
	PushDefaultNothing
	PushDefaultCurrent
	PushDefaultUpstream
	PushDefaultMatching
)

func (s PushDefaultStrategy) String() string {
	switch s {
	case PushDefaultSimple:
		return "simple"
	case PushDefaultNothing:
		return "nothing"
	case PushDefaultCurrent:
		return "current"
	case PushDefaultUpstream:
		return "upstream"
	case PushDefaultMatching:
		return "matching"
	default:
		return "unknown"
	}
}

// ParsePushDefaultStrategy parses a push.default token. "tracking" is a
// deprecated synonym git still accepts for "upstream". Unrecognized tokens
// produce a *MalformedValueError, never a silent default.
func ParsePushDefaultStrategy(value string) (PushDefaultStrategy, error) {
	switch value {
	case "nothing":
		return PushDefaultNothing, nil
	case "current":
		return PushDefaultCurrent, nil
	case "upstream", "tracking":
		return PushDefaultUpstream, nil
	case "simple":
		return PushDefaultSimple, nil
	case "matching":
		return PushDefaultMatching, nil
	default:
		return PushDefaultSimple, &MalformedValueError{
			Key:   PushDefaultKey,
			Value: value,
			Valid: []string{"nothing", "matching", "simple", "upstream", "current"},
		}
	}
}

// ResolvePushDefaultStrategy reads push.default and parses it. An unset key
// resolves to PushDefaultSimple; a present but unrecognized value is an
// error. That asymmetry with ResolveUntrackedFilesMode is deliberate: a
// mistyped push strategy changes where commits land, so it must not be
// papered over.
func ResolvePushDefaultStrategy(repo git.Repository) (PushDefaultStrategy, error) {
	v, err := GetString(repo, PushDefaultKey)
	if err != nil {
		return PushDefaultSimple, err
	}
	if v == nil {
		return PushDefaultSimple, nil
	}
	return ParsePushDefaultStrategy(*v)
}
