package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEffectiveConfiguration_Defaults(t *testing.T) {
	ec, err := NewEffectiveConfiguration(&Config{})
	require.NoError(t, err)
	require.Equal(t, OutputText, ec.Output)
	require.Empty(t, ec.ShowKeys)
}

func TestNewEffectiveConfiguration_Explicit(t *testing.T) {
	ec, err := NewEffectiveConfiguration(&Config{
		Output:   stringPtr(OutputJSON),
		ShowKeys: strSlicePtr([]string{"user.name"}),
	})
	require.NoError(t, err)
	require.Equal(t, OutputJSON, ec.Output)
	require.Equal(t, []string{"user.name"}, ec.ShowKeys)
}

func TestNewEffectiveConfiguration_InvalidOutput(t *testing.T) {
	_, err := NewEffectiveConfiguration(&Config{Output: stringPtr("xml")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid output format")
	require.Contains(t, err.Error(), "xml")
}
