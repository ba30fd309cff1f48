package tooltip

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML form of the session options. Unset fields keep
// their defaults.
type FileConfig struct {
	Placement           string    `yaml:"placement,omitempty"`
	Type                string    `yaml:"type,omitempty"`
	Offset              *float64  `yaml:"offset,omitempty"`
	OpenDelay           *Duration `yaml:"open_delay,omitempty"`
	CloseDelay          *Duration `yaml:"close_delay,omitempty"`
	AutoFlip            *bool     `yaml:"auto_flip,omitempty"`
	MaxWidth            *float64  `yaml:"max_width,omitempty"`
	ZIndex              *int      `yaml:"z_index,omitempty"`
	Disabled            *bool     `yaml:"disabled,omitempty"`
	CloseOnClickOutside *bool     `yaml:"close_on_click_outside,omitempty"`
	CloseOnEscape       *bool     `yaml:"close_on_escape,omitempty"`
}

// Duration accepts either a Go duration string ("150ms") or a bare integer
// number of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	if value.Tag == "!!int" {
		var ms int64
		if err := value.Decode(&ms); err != nil {
			return err
		}
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes and validates YAML. source names the input in errors.
func ParseConfig(data []byte, source string) (FileConfig, error) {
	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

// Validate returns one message per invalid field.
func (cfg FileConfig) Validate() []string {
	var errs []string

	if cfg.Placement != "" {
		if _, err := ParsePlacement(cfg.Placement); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if cfg.Type != "" {
		if _, err := ParseMode(cfg.Type); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if cfg.Offset != nil && *cfg.Offset < 0 {
		errs = append(errs, fmt.Sprintf("offset must not be negative, got %v", *cfg.Offset))
	}
	if cfg.OpenDelay != nil && *cfg.OpenDelay < 0 {
		errs = append(errs, "open_delay must not be negative")
	}
	if cfg.CloseDelay != nil && *cfg.CloseDelay < 0 {
		errs = append(errs, "close_delay must not be negative")
	}
	if cfg.MaxWidth != nil && *cfg.MaxWidth <= 0 {
		errs = append(errs, fmt.Sprintf("max_width must be positive, got %v", *cfg.MaxWidth))
	}
	return errs
}

// Options converts the file into session options.
func (cfg FileConfig) Options() ([]Option, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}

	var opts []Option
	if cfg.Placement != "" {
		p, _ := ParsePlacement(cfg.Placement)
		opts = append(opts, WithPlacement(p))
	}
	if cfg.Type != "" {
		m, _ := ParseMode(cfg.Type)
		opts = append(opts, WithMode(m))
	}
	if cfg.Offset != nil {
		opts = append(opts, WithOffset(*cfg.Offset))
	}
	if cfg.OpenDelay != nil {
		opts = append(opts, WithOpenDelay(time.Duration(*cfg.OpenDelay)))
	}
	if cfg.CloseDelay != nil {
		opts = append(opts, WithCloseDelay(time.Duration(*cfg.CloseDelay)))
	}
	if cfg.AutoFlip != nil {
		opts = append(opts, WithAutoFlip(*cfg.AutoFlip))
	}
	if cfg.MaxWidth != nil {
		opts = append(opts, WithMaxWidth(*cfg.MaxWidth))
	}
	if cfg.ZIndex != nil {
		opts = append(opts, WithZIndex(*cfg.ZIndex))
	}
	if cfg.Disabled != nil {
		opts = append(opts, WithDisabled(*cfg.Disabled))
	}
	if cfg.CloseOnClickOutside != nil {
		opts = append(opts, WithCloseOnClickOutside(*cfg.CloseOnClickOutside))
	}
	if cfg.CloseOnEscape != nil {
		opts = append(opts, WithCloseOnEscape(*cfg.CloseOnEscape))
	}
	return opts, nil
}
