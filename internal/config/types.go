// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the artemisup configuration.
	Config struct {
		// Engine is the container runtime binary used when POD_CONTAINER is
		// not set in the environment. Empty means no fallback: the launcher
		// never guesses a runtime.
		Engine string `mapstructure:"engine"`

		// UI holds user interface settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// Verbose enables debug logging by default, as if --verbose were passed.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Engine: "",
		UI: UIConfig{
			Verbose: false,
		},
	}
}
