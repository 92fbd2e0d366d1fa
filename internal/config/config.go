// Package config provides YAML configuration loading, defaults, and
// effective configuration resolution for the gitcfg tool. All optional
// fields are pointers to support merge semantics: file values override
// defaults, and command-line flags override both.
package config

// Config is the root configuration for gitcfg.
type Config struct {
	// Output selects the report format: "text" or "json".
	Output *string `yaml:"output"`

	// ShowKeys lists extra raw configuration keys included in `gitcfg show`
	// reports, in addition to the two typed settings.
	ShowKeys *[]string `yaml:"show-keys"`
}

// Merge returns a Config where fields set in override replace fields in
// base. Neither argument is mutated.
func Merge(base, override *Config) *Config {
	merged := *base
	if override == nil {
		return &merged
	}
	if override.Output != nil {
		merged.Output = override.Output
	}
	if override.ShowKeys != nil {
		merged.ShowKeys = override.ShowKeys
	}
	return &merged
}
