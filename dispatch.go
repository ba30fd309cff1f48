package tooltip

// HandleEvent routes an input event to the session and reports whether the
// session consumed it.
//
// Mouse positions are hit-tested against the trigger to synthesize pointer
// enter and leave. A left press on the trigger is a click; a left press
// outside both the trigger and the content is an outside click. Wheel events,
// ScrollEvent and ResizeEvent reposition an open tooltip. Escape closes it.
func (s *Session) HandleEvent(ev Event) bool {
	if s.unmounted {
		return false
	}

	switch e := ev.(type) {
	case KeyEvent:
		if e.Key != KeyEscape || !s.cfg.CloseOnEscape || s.state == StateClosed {
			return false
		}
		s.Escape()
		return true
	case MouseEvent:
		return s.handleMouse(e)
	case ResizeEvent:
		s.Resize()
	case ScrollEvent:
		s.Scroll()
	}
	return false
}

func (s *Session) handleMouse(e MouseEvent) bool {
	if e.IsWheel() {
		s.Scroll()
		return false
	}

	x, y := float64(e.X), float64(e.Y)
	inTrigger := hit(s.host.Trigger(), x, y)
	s.trackHover(inTrigger)

	if e.Button != MouseLeft || e.Action != MousePress {
		return false
	}
	if inTrigger {
		s.Click()
		return s.cfg.Mode == Click
	}
	if !hit(s.host.Content(), x, y) {
		s.ClickOutside()
	}
	return false
}

// trackHover turns pointer positions into enter and leave transitions.
func (s *Session) trackHover(inside bool) {
	if inside == s.hovered {
		return
	}
	s.hovered = inside
	if inside {
		s.PointerEnter()
	} else {
		s.PointerLeave()
	}
}

func hit(el Element, x, y float64) bool {
	if el == nil {
		return false
	}
	r, ok := el.Bounds()
	return ok && r.Contains(x, y)
}
