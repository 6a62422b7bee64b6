package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/muratovnur/constructor-form/internal/form"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Form FormConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent   string `mapstructure:"accent"`
	ShowHelp bool   `mapstructure:"show_help"`
}

// FormConfig holds builder settings and optional preset fields.
type FormConfig struct {
	DefaultType string   `mapstructure:"default_type"`
	Presets     []string `mapstructure:"presets"`
}

// Preset is one "label:type" pair preloaded into the collection at
// startup. Form data is never written back; presets only seed a session.
type Preset struct {
	Label string
	Type  string
}

// Load reads configuration from file and env. Env var overrides use
// prefix CONSTRUCTOR_FORM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.accent", "")
	v.SetDefault("ui.show_help", true)
	v.SetDefault("form.default_type", "")
	v.SetDefault("form.presets", []string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CONSTRUCTOR_FORM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "constructor-form"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONSTRUCTOR_FORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultType resolves the builder's initial draft type against the
// registry, falling back to the first registered type.
func (c Config) DefaultType(reg *form.Registry) (string, error) {
	tag := strings.TrimSpace(c.Form.DefaultType)
	if tag == "" {
		return reg.First().Tag, nil
	}
	if _, ok := reg.Lookup(tag); !ok {
		return "", unknownTagError(reg, "form.default_type", tag)
	}
	return tag, nil
}

// ParsePresets validates the configured "label:type" entries against the
// registry. Any malformed entry aborts startup rather than silently
// seeding a broken form.
func ParsePresets(entries []string, reg *form.Registry) ([]Preset, error) {
	presets := make([]Preset, 0, len(entries))
	for _, entry := range entries {
		label, tag, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("preset %q: want \"label:type\"", entry)
		}
		label = strings.TrimSpace(label)
		tag = strings.TrimSpace(tag)
		if label == "" {
			return nil, fmt.Errorf("preset %q: empty label", entry)
		}
		if _, found := reg.Lookup(tag); !found {
			return nil, unknownTagError(reg, fmt.Sprintf("preset %q", entry), tag)
		}
		presets = append(presets, Preset{Label: label, Type: tag})
	}
	return presets, nil
}

func unknownTagError(reg *form.Registry, where, tag string) error {
	if s := reg.Suggest(tag); s != "" {
		return fmt.Errorf("%s: unknown field type %q (did you mean %q?)", where, tag, s)
	}
	return fmt.Errorf("%s: unknown field type %q", where, tag)
}
