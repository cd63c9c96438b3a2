// Package config loads and writes quill.yml, the optional theme file for
// the quill CLI. A missing file means defaults; the QUILL_ environment
// prefix overrides individual keys.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file quill looks for in the working directory.
const FileName = "quill.yml"

// Config holds quill.yml settings.
type Config struct {
	Color  bool  `yaml:"color"`
	Prompt Style `yaml:"prompt"`
	Hint   Style `yaml:"hint"`
}

// Style describes how a piece of prompt text is rendered.
type Style struct {
	Color string `yaml:"color"`
	Bold  bool   `yaml:"bold"`
}

// Default returns the theme used when no quill.yml exists.
func Default() *Config {
	return &Config{
		Color: true,
		Prompt: Style{
			Color: "cyan",
			Bold:  true,
		},
		Hint: Style{
			Color: "240",
		},
	}
}

// Load reads quill.yml from the working directory, falling back to
// Default when the file does not exist.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("quill")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable overrides (QUILL_COLOR,
	// QUILL_PROMPT_COLOR, ...); they apply with or without a file
	v.AutomaticEnv()
	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s: %w", FileName, err)
		}
	}

	cfg := Default()
	if v.IsSet("color") {
		cfg.Color = v.GetBool("color")
	}
	if s := v.GetString("prompt.color"); s != "" {
		cfg.Prompt.Color = s
	}
	if v.IsSet("prompt.bold") {
		cfg.Prompt.Bold = v.GetBool("prompt.bold")
	}
	if s := v.GetString("hint.color"); s != "" {
		cfg.Hint.Color = s
	}
	if v.IsSet("hint.bold") {
		cfg.Hint.Bold = v.GetBool("hint.bold")
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
