package tooltip

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/grindlemire/go-tooltip/internal/placement"
)

var (
	// ErrNilHost is returned by NewSession when no Host is given.
	ErrNilHost = errors.New("tooltip: nil host")
	// ErrNilScheduler is returned by NewSession when no Scheduler is given.
	ErrNilScheduler = errors.New("tooltip: nil scheduler")
)

// Session is the runtime state of one tooltip: whether it is shown, where,
// and the single pending open or close timer.
//
// A Session is not safe for concurrent use. Call its methods from the
// goroutine that runs the Scheduler's functions.
type Session struct {
	cfg   Config
	host  Host
	sched Scheduler
	log   *slog.Logger
	id    string

	state     State
	visible   bool
	placement Placement
	position  Position

	// pending is the only live timer. gen is bumped whenever it is replaced
	// or cancelled so that a callback from an older timer is ignored.
	pending Timer
	gen     uint64

	unmounted bool
	hovered   bool
}

// NewSession creates a closed session for the trigger and content provided
// by host. Options are applied on top of DefaultConfig.
func NewSession(host Host, sched Scheduler, opts ...Option) (*Session, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("tooltip: %w", err)
		}
	}

	s := &Session{
		cfg:       cfg,
		host:      host,
		sched:     sched,
		id:        uuid.NewString(),
		placement: cfg.Placement,
	}
	s.log = cfg.Logger
	if s.log == nil {
		s.log = Logger()
	}
	s.log = s.log.With("session", s.id, "mode", cfg.Mode.String())
	return s, nil
}

// ID returns the session identifier reported in Metadata.
func (s *Session) ID() string { return s.id }

// Mode returns the interaction mode.
func (s *Session) Mode() Mode { return s.cfg.Mode }

// State returns the current state.
func (s *Session) State() State { return s.state }

// IsOpen reports whether the floating element is shown. A closing tooltip is
// still open until its close delay expires.
func (s *Session) IsOpen() bool { return s.visible }

// Placement returns the side currently used.
func (s *Session) Placement() Placement { return s.placement }

// Position returns where the floating element is drawn.
func (s *Session) Position() Position { return s.position }

// Disabled reports whether opening is suppressed.
func (s *Session) Disabled() bool { return s.cfg.Disabled }

// Unmounted reports whether Unmount was called.
func (s *Session) Unmounted() bool { return s.unmounted }

// Metadata returns a snapshot of the session.
func (s *Session) Metadata() Metadata {
	return Metadata{
		ID:        s.id,
		Placement: s.placement,
		Mode:      s.cfg.Mode,
		IsOpen:    s.visible,
		Trigger:   s.host.Trigger(),
		Content:   s.host.Content(),
	}
}

// Frame returns drawing instructions for the floating element.
func (s *Session) Frame() Frame {
	return Frame{
		Visible:   s.visible,
		Position:  s.position,
		Placement: s.placement,
		MaxWidth:  s.cfg.MaxWidth,
		ZIndex:    s.cfg.ZIndex,
	}
}

// PointerEnter requests opening in Hover mode.
func (s *Session) PointerEnter() {
	if s.cfg.Mode == Hover {
		s.requestOpen("pointer-enter")
	}
}

// PointerLeave requests closing in Hover mode.
func (s *Session) PointerLeave() {
	if s.cfg.Mode == Hover {
		s.requestClose("pointer-leave")
	}
}

// Click toggles a Click mode tooltip. A shown tooltip is closed, including
// one whose close delay is already running. A hidden one is opened, and a
// click during the open delay restarts it.
func (s *Session) Click() {
	if s.cfg.Mode != Click {
		return
	}
	if s.visible {
		s.requestClose("click")
	} else {
		s.requestOpen("click")
	}
}

// ClickOutside closes a Click mode tooltip immediately when a click landed
// outside both the trigger and the content.
func (s *Session) ClickOutside() {
	if s.cfg.Mode != Click || !s.cfg.CloseOnClickOutside {
		return
	}
	s.dismiss("click-outside")
}

// Escape closes the tooltip immediately.
func (s *Session) Escape() {
	if !s.cfg.CloseOnEscape {
		return
	}
	s.dismiss("escape")
}

// Scroll recomputes placement after any scroll while the tooltip is open.
func (s *Session) Scroll() {
	s.Reposition()
}

// Resize recomputes placement after a viewport resize while the tooltip is open.
func (s *Session) Resize() {
	s.Reposition()
}

// SetDisabled suppresses or re-enables opening. Disabling cancels a pending
// open but leaves a shown tooltip alone until the next close interaction.
func (s *Session) SetDisabled(disabled bool) {
	if s.unmounted || s.cfg.Disabled == disabled {
		return
	}
	s.cfg.Disabled = disabled
	s.log.Debug("tooltip disabled changed", "disabled", disabled)
	if !disabled || s.state != StateOpening {
		return
	}
	s.cancelPending()
	if s.visible {
		s.setState(StateOpen, "disabled")
	} else {
		s.setState(StateClosed, "disabled")
	}
}

// Unmount tears the session down. The pending timer is cancelled, no
// callback fires, and every later call is a no-op.
func (s *Session) Unmount() {
	if s.unmounted {
		return
	}
	s.cancelPending()
	s.setState(StateClosed, "unmount")
	s.visible = false
	s.hovered = false
	s.unmounted = true
}

// Reposition measures the trigger, content and viewport and updates the
// placement and position. It does nothing while the tooltip is hidden or
// before both elements can be measured.
func (s *Session) Reposition() {
	if s.unmounted || !s.visible {
		return
	}
	g := s.measure()
	if !g.Measured {
		s.log.Debug("tooltip reposition skipped", "reason", "unmeasured")
		return
	}

	next, pos := placement.Compute(s.placement, g, s.cfg.Offset, s.cfg.AutoFlip)
	changed := next != s.placement
	s.placement = next
	s.position = pos
	if !changed {
		return
	}
	s.log.Debug("tooltip placement changed", "placement", next.String(), "x", pos.X, "y", pos.Y)
	if s.cfg.OnPlacementChange != nil {
		s.cfg.OnPlacementChange(next)
	}
}

// measure reads fresh geometry from the host.
func (s *Session) measure() Geometry {
	g := Geometry{Viewport: s.host.Viewport()}
	trigger, content := s.host.Trigger(), s.host.Content()
	if trigger == nil || content == nil {
		return g
	}
	tr, triggerOK := trigger.Bounds()
	cr, contentOK := content.Bounds()
	g.Trigger = tr
	g.Content = cr.WithMaxWidth(s.cfg.MaxWidth)
	g.Measured = triggerOK && contentOK
	return g
}

func (s *Session) requestOpen(reason string) {
	if s.unmounted {
		s.log.Warn("tooltip open after unmount", "reason", reason)
		return
	}
	if s.cfg.Disabled {
		s.log.Debug("tooltip open ignored", "reason", reason, "disabled", true)
		return
	}
	if s.state == StateOpen {
		return
	}

	s.cancelPending()
	if s.cfg.OpenDelay <= 0 {
		s.finishOpen(reason)
		return
	}
	s.setState(StateOpening, reason)
	s.schedule(s.cfg.OpenDelay, func() { s.finishOpen(reason) })
}

func (s *Session) requestClose(reason string) {
	if s.unmounted {
		s.log.Warn("tooltip close after unmount", "reason", reason)
		return
	}
	if s.state == StateClosed {
		return
	}

	s.cancelPending()
	if s.cfg.CloseDelay <= 0 {
		s.finishClose(reason)
		return
	}
	s.setState(StateClosing, reason)
	s.schedule(s.cfg.CloseDelay, func() { s.finishClose(reason) })
}

// dismiss closes without waiting for the close delay.
func (s *Session) dismiss(reason string) {
	if s.unmounted || s.state == StateClosed {
		return
	}
	s.cancelPending()
	s.finishClose(reason)
}

func (s *Session) finishOpen(reason string) {
	s.setState(StateOpen, reason)
	if s.visible {
		// A close was interrupted; the element never disappeared.
		return
	}
	s.visible = true
	if s.cfg.OnOpen != nil {
		s.cfg.OnOpen(s.Metadata())
	}
	s.Reposition()
}

func (s *Session) finishClose(reason string) {
	s.setState(StateClosed, reason)
	if !s.visible {
		return
	}
	s.visible = false
	if s.cfg.OnClose != nil {
		s.cfg.OnClose(s.Metadata())
	}
}

// schedule replaces the pending timer with one that runs fn after d.
func (s *Session) schedule(d time.Duration, fn func()) {
	s.gen++
	gen := s.gen
	s.log.Debug("tooltip timer scheduled", "delay", d, "state", s.state.String())
	s.pending = s.sched.AfterFunc(d, func() {
		if s.unmounted || gen != s.gen {
			return
		}
		s.pending = nil
		fn()
	})
}

func (s *Session) cancelPending() {
	s.gen++
	if s.pending == nil {
		return
	}
	s.pending.Stop()
	s.pending = nil
}

func (s *Session) setState(next State, reason string) {
	if s.state == next {
		return
	}
	s.log.Debug("tooltip transition",
		"from", s.state.String(),
		"to", next.String(),
		"reason", reason,
		"placement", s.placement.String(),
	)
	s.state = next
}
