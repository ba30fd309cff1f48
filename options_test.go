package tooltip

import (
	"log/slog"
	"testing"
	"time"
)

func TestOptions_Validation(t *testing.T) {
	type tc struct {
		opt     Option
		wantErr bool
	}

	tests := map[string]tc{
		"valid placement":      {opt: WithPlacement(Left)},
		"invalid placement":    {opt: WithPlacement(Placement(9)), wantErr: true},
		"valid mode":           {opt: WithMode(Click)},
		"invalid mode":         {opt: WithMode(Mode(7)), wantErr: true},
		"zero offset":          {opt: WithOffset(0)},
		"negative offset":      {opt: WithOffset(-1), wantErr: true},
		"open delay":           {opt: WithOpenDelay(time.Second)},
		"negative open delay":  {opt: WithOpenDelay(-time.Millisecond), wantErr: true},
		"negative close delay": {opt: WithCloseDelay(-time.Millisecond), wantErr: true},
		"max width":            {opt: WithMaxWidth(120)},
		"zero max width":       {opt: WithMaxWidth(0), wantErr: true},
		"nil logger":           {opt: WithLogger(nil), wantErr: true},
		"logger":               {opt: WithLogger(slog.Default())},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := tt.opt(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions_Apply(t *testing.T) {
	cfg := DefaultConfig()
	opts := []Option{
		WithPlacement(Bottom),
		WithMode(Click),
		WithOffset(4),
		WithOpenDelay(150 * time.Millisecond),
		WithCloseDelay(50 * time.Millisecond),
		WithAutoFlip(false),
		WithMaxWidth(200),
		WithZIndex(5),
		WithDisabled(true),
		WithCloseOnClickOutside(false),
		WithCloseOnEscape(false),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			t.Fatalf("option error = %v", err)
		}
	}

	if cfg.Placement != Bottom || cfg.Mode != Click {
		t.Errorf("placement/mode = %s/%s, want bottom/click", cfg.Placement, cfg.Mode)
	}
	if cfg.Offset != 4 || cfg.MaxWidth != 200 || cfg.ZIndex != 5 {
		t.Errorf("offset/maxWidth/zIndex = %v/%v/%v", cfg.Offset, cfg.MaxWidth, cfg.ZIndex)
	}
	if cfg.OpenDelay != 150*time.Millisecond || cfg.CloseDelay != 50*time.Millisecond {
		t.Errorf("delays = %v/%v", cfg.OpenDelay, cfg.CloseDelay)
	}
	if cfg.AutoFlip || !cfg.Disabled || cfg.CloseOnClickOutside || cfg.CloseOnEscape {
		t.Errorf("flags = %+v", cfg)
	}
}

func TestWithConfig_LaterOptionsApply(t *testing.T) {
	base := DefaultConfig()
	base.Offset = 12
	base.Mode = Click

	s, _, _ := newTestSession(t, newFakeHost(), WithConfig(base), WithOffset(2))
	if s.Mode() != Click {
		t.Errorf("Mode() = %s, want click", s.Mode())
	}
	if s.cfg.Offset != 2 {
		t.Errorf("Offset = %v, want 2", s.cfg.Offset)
	}
}

func TestWithConfig_Validates(t *testing.T) {
	type tc struct {
		mutate  func(c *Config)
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":         {mutate: func(c *Config) {}},
		"negative offset":  {mutate: func(c *Config) { c.Offset = -1 }, wantErr: true},
		"negative open":    {mutate: func(c *Config) { c.OpenDelay = -time.Millisecond }, wantErr: true},
		"negative close":   {mutate: func(c *Config) { c.CloseDelay = -time.Millisecond }, wantErr: true},
		"invalid mode":     {mutate: func(c *Config) { c.Mode = Mode(5) }, wantErr: true},
		"invalid side":     {mutate: func(c *Config) { c.Placement = Placement(5) }, wantErr: true},
		"zero max width":   {mutate: func(c *Config) { c.MaxWidth = 0 }, wantErr: true},
		"nil logger is ok": {mutate: func(c *Config) { c.Logger = nil }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := DefaultConfig()
			tt.mutate(&in)

			got := DefaultConfig()
			got.ZIndex = 42
			err := WithConfig(in)(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && got.ZIndex != 42 {
				t.Error("rejected config was still applied")
			}
			if !tt.wantErr && got.ZIndex != DefaultZIndex {
				t.Errorf("ZIndex = %d, want %d from the new config", got.ZIndex, DefaultZIndex)
			}
		})
	}
}

func TestNewSession_RejectsInvalidWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Offset = -4
	if _, err := NewSession(newFakeHost(), NewManualScheduler(), WithConfig(cfg)); err == nil {
		t.Error("NewSession() accepted a config with a negative offset")
	}
}

func TestMode_String(t *testing.T) {
	type tc struct {
		mode Mode
		want string
	}

	tests := map[string]tc{
		"hover":   {mode: Hover, want: "hover"},
		"click":   {mode: Click, want: "click"},
		"unknown": {mode: Mode(9), want: "Mode(9)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	type tc struct {
		in      string
		want    Mode
		wantErr bool
	}

	tests := map[string]tc{
		"hover":       {in: "hover", want: Hover},
		"upper click": {in: " CLICK ", want: Click},
		"unknown":     {in: "focus", wantErr: true},
		"empty":       {in: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	want := map[State]string{
		StateClosed:  "Closed",
		StateOpening: "Opening",
		StateOpen:    "Open",
		StateClosing: "Closing",
	}
	for st, s := range want {
		if got := st.String(); got != s {
			t.Errorf("State(%d).String() = %q, want %q", st, got, s)
		}
	}
}
