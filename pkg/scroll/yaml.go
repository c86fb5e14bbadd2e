package scroll

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// absent keys from explicit zero values so defaults survive partial files.
type fileConfig struct {
	Behavior   string   `yaml:"behavior,omitempty"`
	Top        *float64 `yaml:"top,omitempty"`
	Left       *float64 `yaml:"left,omitempty"`
	Offset     *float64 `yaml:"offset,omitempty"`
	DelayMs    *int64   `yaml:"delay_ms,omitempty"`
	AutoHide   *bool    `yaml:"auto_hide,omitempty"`
	Threshold  *float64 `yaml:"threshold,omitempty"`
	UpdateHash *bool    `yaml:"update_hash,omitempty"`
	WatchID    string   `yaml:"watch_id,omitempty"`
	ScrollID   string   `yaml:"scroll_id,omitempty"`
}

// ParseConfig decodes a widget config from YAML. Keys left out of the
// document keep their [DefaultConfig] values:
//
//	behavior: instant
//	threshold: 400
//	scroll_id: bottom-scroll
//	delay_ms: 2000
func ParseConfig(data []byte) (Config, error) {
	const op = "scroll.ParseConfig"

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, &ConfigError{Op: op, Err: err}
	}

	cfg := DefaultConfig()
	switch fc.Behavior {
	case "":
	case "auto":
		cfg.Behavior = BehaviorAuto
	case "instant":
		cfg.Behavior = BehaviorInstant
	case "smooth":
		cfg.Behavior = BehaviorSmooth
	default:
		return Config{}, &ConfigError{Op: op, Field: "behavior",
			Err: errors.New("must be auto, instant, or smooth")}
	}
	if fc.Top != nil {
		cfg.Top = *fc.Top
	}
	if fc.Left != nil {
		cfg.Left = *fc.Left
	}
	if fc.Offset != nil {
		cfg.Offset = *fc.Offset
	}
	if fc.DelayMs != nil {
		cfg.Delay = time.Duration(*fc.DelayMs) * time.Millisecond
	}
	if fc.AutoHide != nil {
		cfg.AutoHide = *fc.AutoHide
	}
	if fc.Threshold != nil {
		cfg.Threshold = *fc.Threshold
	}
	if fc.UpdateHash != nil {
		cfg.UpdateHash = *fc.UpdateHash
	}
	cfg.WatchID = fc.WatchID
	cfg.ScrollID = fc.ScrollID

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a widget config from a YAML file. A missing file is
// not an error; it yields [DefaultConfig].
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, &ConfigError{Op: "scroll.LoadConfigFile", Err: err}
	}
	return ParseConfig(data)
}
