package config

import "fmt"

// Output formats accepted by the tool.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultOutput is used when no output format is configured.
const DefaultOutput = OutputText

// EffectiveConfiguration is a fully resolved configuration with all fields
// guaranteed to have values.
type EffectiveConfiguration struct {
	Output   string
	ShowKeys []string
}

// NewEffectiveConfiguration resolves all pointer fields of the given Config
// to concrete values, applying defaults for unset fields.
func NewEffectiveConfiguration(cfg *Config) (EffectiveConfiguration, error) {
	ec := EffectiveConfiguration{
		Output: derefString(cfg.Output, DefaultOutput),
	}
	if cfg.ShowKeys != nil {
		ec.ShowKeys = *cfg.ShowKeys
	}

	if ec.Output != OutputText && ec.Output != OutputJSON {
		return EffectiveConfiguration{}, fmt.Errorf("invalid output format %q, must be %q or %q",
			ec.Output, OutputText, OutputJSON)
	}
	return ec, nil
}

func derefString(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}
