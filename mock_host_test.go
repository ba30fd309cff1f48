package tooltip

import "testing"

// fakeElement is an Element with fixed bounds.
type fakeElement struct {
	rect     Rect
	measured bool
}

func (e *fakeElement) Bounds() (Rect, bool) {
	return e.rect, e.measured
}

// fakeHost is a Host whose geometry tests mutate directly.
type fakeHost struct {
	trigger  *fakeElement
	content  *fakeElement
	viewport Viewport

	viewportReads int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		trigger:  &fakeElement{rect: NewRect(380, 290, 40, 20), measured: true},
		content:  &fakeElement{rect: NewRect(0, 0, 100, 30), measured: true},
		viewport: NewViewport(800, 600),
	}
}

func (h *fakeHost) Trigger() Element { return h.trigger }
func (h *fakeHost) Content() Element { return h.content }

func (h *fakeHost) Viewport() Viewport {
	h.viewportReads++
	return h.viewport
}

// recorder captures callbacks in the order they fire.
type recorder struct {
	opens      []Metadata
	closes     []Metadata
	placements []Placement
	order      []string
}

func (r *recorder) options() []Option {
	return []Option{
		WithOnOpen(func(m Metadata) {
			r.opens = append(r.opens, m)
			r.order = append(r.order, "open")
		}),
		WithOnClose(func(m Metadata) {
			r.closes = append(r.closes, m)
			r.order = append(r.order, "close")
		}),
		WithOnPlacementChange(func(p Placement) {
			r.placements = append(r.placements, p)
			r.order = append(r.order, "placement:"+p.String())
		}),
	}
}

// newTestSession builds a session on a manual clock with a recorder attached.
func newTestSession(t testing.TB, host *fakeHost, opts ...Option) (*Session, *ManualScheduler, *recorder) {
	t.Helper()
	sched := NewManualScheduler()
	rec := &recorder{}
	all := append(rec.options(), opts...)
	s, err := NewSession(host, sched, all...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, sched, rec
}
