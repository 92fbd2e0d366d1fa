package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePushDefaultStrategy_Absent(t *testing.T) {
	strategy, err := ResolvePushDefaultStrategy(repoWith(nil))
	require.NoError(t, err)
	require.Equal(t, PushDefaultSimple, strategy)
}

func TestResolvePushDefaultStrategy_Values(t *testing.T) {
	tests := []struct {
		value string
		want  PushDefaultStrategy
	}{
		{"nothing", PushDefaultNothing},
		{"current", PushDefaultCurrent},
		{"upstream", PushDefaultUpstream},
		{"tracking", PushDefaultUpstream},
		{"simple", PushDefaultSimple},
		{"matching", PushDefaultMatching},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			repo := repoWith(map[string]string{PushDefaultKey: tt.value})
			strategy, err := ResolvePushDefaultStrategy(repo)
			require.NoError(t, err)
			require.Equal(t, tt.want, strategy)
		})
	}
}

func TestResolvePushDefaultStrategy_Malformed(t *testing.T) {
	repo := repoWith(map[string]string{PushDefaultKey: "bogus"})

	_, err := ResolvePushDefaultStrategy(repo)
	require.Error(t, err)

	var malformed *MalformedValueError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, PushDefaultKey, malformed.Key)
	require.Equal(t, "bogus", malformed.Value)
	require.Contains(t, err.Error(), "bogus")
	require.Contains(t, err.Error(), "must be one of nothing, matching, simple, upstream or current")
}

func TestResolvePushDefaultStrategy_StoreErrorPropagates(t *testing.T) {
	cause := errors.New("config file corrupt")

	_, err := ResolvePushDefaultStrategy(brokenRepo(cause))
	require.Error(t, err)

	var storeErr *StoreAccessError
	require.ErrorAs(t, err, &storeErr)
	require.ErrorIs(t, err, cause)
}

func TestParsePushDefaultStrategy_CaseSensitive(t *testing.T) {
	for _, value := range []string{"Simple", "UPSTREAM", " simple"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParsePushDefaultStrategy(value)
			var malformed *MalformedValueError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestPushDefaultStrategy_String(t *testing.T) {
	require.Equal(t, "simple", PushDefaultSimple.String())
	require.Equal(t, "nothing", PushDefaultNothing.String())
	require.Equal(t, "current", PushDefaultCurrent.String())
	require.Equal(t, "upstream", PushDefaultUpstream.String())
	require.Equal(t, "matching", PushDefaultMatching.String())
	require.Equal(t, "unknown", PushDefaultStrategy(42).String())
}

func TestPushDefaultStrategy_ZeroValueIsSimple(t *testing.T) {
	var s PushDefaultStrategy
	require.Equal(t, PushDefaultSimple, s)
}
