package main

import (
	tooltip "github.com/grindlemire/go-tooltip"
)

// simElement is a box the user positions by hand.
type simElement struct {
	rect     tooltip.Rect
	measured bool
}

func (e *simElement) Bounds() (tooltip.Rect, bool) {
	return e.rect, e.measured
}

// simHost is a tooltip.Host whose geometry is set by commands or by the
// live terminal layout.
type simHost struct {
	trigger  simElement
	content  simElement
	viewport tooltip.Viewport
}

func newSimHost() *simHost {
	return &simHost{
		trigger:  simElement{rect: tooltip.NewRect(380, 290, 40, 20), measured: true},
		content:  simElement{rect: tooltip.NewRect(0, 0, 120, 32), measured: true},
		viewport: tooltip.NewViewport(800, 600),
	}
}

func (h *simHost) Trigger() tooltip.Element { return &h.trigger }
func (h *simHost) Content() tooltip.Element { return &h.content }
func (h *simHost) Viewport() tooltip.Viewport {
	return h.viewport
}

// setContentSize keeps the content where it was drawn and changes its size.
func (h *simHost) setContentSize(w, ht float64) {
	h.content.rect = tooltip.NewRect(h.content.rect.X, h.content.rect.Y, w, ht)
	h.content.measured = true
}

// moveContent places the content box at the position the session computed,
// so outside-click hit tests see it where it is drawn.
func (h *simHost) moveContent(pos tooltip.Position) {
	h.content.rect = h.content.rect.At(pos)
}
