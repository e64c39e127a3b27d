package dispatch

import (
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Settings selects which Finalizer implementation New returns. The
// selection is a wiring time concern; the core never branches on it during
// a call.
type Settings struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultSettings has checking enabled.
func DefaultSettings() Settings {
	return Settings{Enabled: true}
}

// LoadSettings reads the CHECK_ARGS environment variable. The values off,
// false, no and 0 disable checking; anything else, including an unset
// variable, leaves it enabled.
func LoadSettings() Settings {
	switch strings.ToLower(os.Getenv(`CHECK_ARGS`)) {
	case `off`, `false`, `no`, `0`:
		return Settings{Enabled: false}
	}
	return DefaultSettings()
}

// SettingsFromYAML reads settings from a YAML document such as
//
//	enabled: false
func SettingsFromYAML(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// New returns the finalizer the settings select.
func New(s Settings) Finalizer {
	if s.Enabled {
		return Checking{}
	}
	return Passthrough{}
}
