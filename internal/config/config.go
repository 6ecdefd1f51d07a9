// Package config provides configuration types and defaults for osc52.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/SubtleTools/go-osc52/pkg/osc52"
)

// ModeAuto picks the escape mode from the environment at copy time.
const ModeAuto = "auto"

// DefaultOutput is where sequences are written unless configured otherwise.
// Writing to the controlling terminal bypasses stdout redirection.
const DefaultOutput = "/dev/tty"

// EnvPrefix is the prefix for environment overrides, e.g. OSC52_MODE.
const EnvPrefix = "OSC52"

// Config holds all configuration options for osc52.
type Config struct {
	// Mode is "default", "screen", "tmux" or "auto".
	Mode string `mapstructure:"mode"`
	// Clipboard is "system" or "primary".
	Clipboard string `mapstructure:"clipboard"`
	// Limit is the maximum payload length in characters; 0 disables it.
	Limit   int    `mapstructure:"limit"`
	Output  string `mapstructure:"output"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Mode:      osc52.DefaultMode.String(),
		Clipboard: osc52.SystemClipboard.String(),
		Output:    DefaultOutput,
	}
}

// Validate checks the configured names. Negative limits are allowed; the
// sequence builder treats them as "no limit".
func (c Config) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(c.Mode), ModeAuto) {
		if _, err := osc52.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("mode: %w", err)
		}
	}
	if _, err := osc52.ParseClipboard(c.Clipboard); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output: path is required")
	}
	return nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/osc52/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "osc52", "config.yaml")
}

// SetDefaults registers the default values on v so that flags, environment
// variables and the config file all layer over them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("mode", d.Mode)
	v.SetDefault("clipboard", d.Clipboard)
	v.SetDefault("limit", d.Limit)
	v.SetDefault("output", d.Output)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
}

// Load reads configuration into v and returns the merged Config. An explicit
// path must exist; when path is empty the default path is used if present.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# osc52 configuration

# Escape mode for terminal multiplexers:
#   default - plain OSC52
#   tmux    - tmux DCS passthrough (needs "set -g allow-passthrough on")
#   screen  - GNU screen DCS, payload split into 76 character chunks
#   auto    - tmux when $TMUX is set, screen when $STY is set, else default
mode: default

# Clipboard buffer: system or primary (X11 primary selection)
clipboard: system

# Maximum payload length in characters. Longer payloads are not sent.
# 0 disables the limit.
limit: 0

# Where sequences are written
output: /dev/tty

# Debug logging (written to log_file, never to the terminal)
debug: false
# log_file: /tmp/osc52.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
