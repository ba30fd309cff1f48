package tooltip

import (
	"fmt"
	"log/slog"
	"time"
)

// Defaults applied by NewSession before options run.
const (
	DefaultPlacement = Top
	DefaultMode      = Hover
	DefaultOffset    = 8
	DefaultMaxWidth  = 300
	DefaultZIndex    = 1000
)

// Config holds the recognized options of a Session.
type Config struct {
	Placement  Placement
	Mode       Mode
	Offset     float64
	OpenDelay  time.Duration
	CloseDelay time.Duration
	AutoFlip   bool
	// MaxWidth caps the content width used for placement.
	MaxWidth float64
	ZIndex   int
	Disabled bool

	// CloseOnClickOutside only applies in Click mode.
	CloseOnClickOutside bool
	CloseOnEscape       bool

	OnOpen            func(Metadata)
	OnClose           func(Metadata)
	OnPlacementChange func(Placement)

	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Placement:           DefaultPlacement,
		Mode:                DefaultMode,
		Offset:              DefaultOffset,
		AutoFlip:            true,
		MaxWidth:            DefaultMaxWidth,
		ZIndex:              DefaultZIndex,
		CloseOnClickOutside: true,
		CloseOnEscape:       true,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config) error

// WithPlacement sets the preferred side. Default is Top.
func WithPlacement(p Placement) Option {
	return func(c *Config) error {
		if !p.Valid() {
			return fmt.Errorf("invalid placement %s", p)
		}
		c.Placement = p
		return nil
	}
}

// WithMode sets the interaction mode. Default is Hover.
func WithMode(m Mode) Option {
	return func(c *Config) error {
		if m != Hover && m != Click {
			return fmt.Errorf("invalid mode %s", m)
		}
		c.Mode = m
		return nil
	}
}

// WithOffset sets the gap between trigger and content. Default is 8.
func WithOffset(offset float64) Option {
	return func(c *Config) error {
		if offset < 0 {
			return fmt.Errorf("offset must not be negative, got %v", offset)
		}
		c.Offset = offset
		return nil
	}
}

// WithOpenDelay sets how long an open request waits before taking effect.
// Default is 0, which opens immediately.
func WithOpenDelay(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return fmt.Errorf("open delay must not be negative, got %v", d)
		}
		c.OpenDelay = d
		return nil
	}
}

// WithCloseDelay sets how long a close request waits before taking effect.
// Default is 0, which closes immediately.
func WithCloseDelay(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return fmt.Errorf("close delay must not be negative, got %v", d)
		}
		c.CloseDelay = d
		return nil
	}
}

// WithAutoFlip enables or disables viewport-fit placement selection.
// Enabled by default.
func WithAutoFlip(enabled bool) Option {
	return func(c *Config) error {
		c.AutoFlip = enabled
		return nil
	}
}

// WithMaxWidth caps the content width. Default is 300.
func WithMaxWidth(w float64) Option {
	return func(c *Config) error {
		if w <= 0 {
			return fmt.Errorf("max width must be positive, got %v", w)
		}
		c.MaxWidth = w
		return nil
	}
}

// WithZIndex sets the stacking order reported in Frame. Default is 1000.
func WithZIndex(z int) Option {
	return func(c *Config) error {
		c.ZIndex = z
		return nil
	}
}

// WithDisabled starts the session with opening suppressed.
func WithDisabled(disabled bool) Option {
	return func(c *Config) error {
		c.Disabled = disabled
		return nil
	}
}

// WithCloseOnClickOutside controls whether a click outside both the trigger
// and the content closes a Click mode tooltip. Enabled by default.
func WithCloseOnClickOutside(enabled bool) Option {
	return func(c *Config) error {
		c.CloseOnClickOutside = enabled
		return nil
	}
}

// WithCloseOnEscape controls whether Escape closes the tooltip. Enabled by default.
func WithCloseOnEscape(enabled bool) Option {
	return func(c *Config) error {
		c.CloseOnEscape = enabled
		return nil
	}
}

// WithOnOpen registers the callback fired when the tooltip becomes visible.
func WithOnOpen(fn func(Metadata)) Option {
	return func(c *Config) error {
		c.OnOpen = fn
		return nil
	}
}

// WithOnClose registers the callback fired when the tooltip is hidden.
func WithOnClose(fn func(Metadata)) Option {
	return func(c *Config) error {
		c.OnClose = fn
		return nil
	}
}

// WithOnPlacementChange registers the callback fired when auto-flip moves
// the tooltip to another side.
func WithOnPlacementChange(fn func(Placement)) Option {
	return func(c *Config) error {
		c.OnPlacementChange = fn
		return nil
	}
}

// WithLogger sets the logger for this session instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithConfig replaces the whole configuration after checking it with
// Validate. Options after it still apply. Start from DefaultConfig; a zero
// Config is rejected for its MaxWidth.
func WithConfig(cfg Config) Option {
	return func(c *Config) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		*c = cfg
		return nil
	}
}

// Validate applies the checks of the individual options to every field and
// returns the first failure. A nil Logger is allowed and means the package
// logger.
func (c Config) Validate() error {
	scratch := c
	checks := []Option{
		WithPlacement(c.Placement),
		WithMode(c.Mode),
		WithOffset(c.Offset),
		WithOpenDelay(c.OpenDelay),
		WithCloseDelay(c.CloseDelay),
		WithMaxWidth(c.MaxWidth),
	}
	for _, check := range checks {
		if err := check(&scratch); err != nil {
			return err
		}
	}
	return nil
}
