// Package settings loads an ambient YAML configuration file that supplies
// defaults for flags the user hasn't set explicitly on the command line.
//
// It is grounded on the same load/fallback/save pattern used by the
// teacher's internal/config package, adapted to prism-dictation's flags
// instead of a single "model/vad/output" shape.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = "prism-dictation"
	settingsFile   = "settings.yaml"
	userConfigFile = "user-config.js"
)

// Config mirrors the begin subcommand's flags that are reasonable to set
// once and forget, rather than passing on every invocation.
type Config struct {
	VoskModelDir  string `yaml:"vosk_model_dir"`
	VoskGrammar   string `yaml:"vosk_grammar_file"`
	PulseDevice   string `yaml:"pulse_device_name"`
	SampleRate    int    `yaml:"sample_rate"`
	InputMethod   string `yaml:"input_method"`
	Output        string `yaml:"output"`
	SimulateInput string `yaml:"simulate_input_tool"`

	DeferOutput                 bool    `yaml:"defer_output"`
	ProgressiveContinuous       bool    `yaml:"continuous"`
	Timeout                     float64 `yaml:"timeout"`
	IdleTime                    float64 `yaml:"idle_time"`
	DelayExit                   float64 `yaml:"delay_exit"`
	PunctuateFromPreviousWithin float64 `yaml:"punctuate_from_previous_timeout"`
	FullSentence                bool    `yaml:"full_sentence"`

	NumbersAsDigits     bool   `yaml:"numbers_as_digits"`
	NumbersUseSeparator bool   `yaml:"numbers_use_separator"`
	NumbersMinValue     *int64 `yaml:"numbers_min_value"`
	NumbersNoSuffix     bool   `yaml:"numbers_no_suffix"`

	Verbose int `yaml:"verbose"`
}

// Default returns a Config matching the original tool's flag defaults.
func Default() *Config {
	return &Config{
		SampleRate:    44100,
		InputMethod:   "PAREC",
		Output:        "SIMULATE_INPUT",
		SimulateInput: "XDOTOOL",
		IdleTime:      0.1,
	}
}

// Dir resolves the prism-dictation config directory, honoring
// XDG_CONFIG_HOME the same way the original tool's calc_user_config_path
// does, falling back to ~/.config on POSIX systems.
func Dir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, userConfigDir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", userConfigDir), nil
}

// Path resolves a named file within the config directory (e.g. "model",
// "user-config.js").
func Path(rest string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if rest == "" {
		return dir, nil
	}
	return filepath.Join(dir, rest), nil
}

// UserHookPath resolves the default location of the user's JavaScript hook.
func UserHookPath() (string, error) {
	return Path(userConfigFile)
}

// Load reads settings.yaml from the config directory, returning defaults if
// it does not exist.
func Load() (*Config, error) {
	path, err := Path(settingsFile)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings file %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to settings.yaml in the config directory, creating the
// directory if required.
func (c *Config) Save() error {
	path, err := Path(settingsFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
