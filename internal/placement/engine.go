package placement

import "github.com/grindlemire/go-tooltip/internal/layout"

// Geometry is one measurement of the live layout.
type Geometry struct {
	Trigger  layout.Rect
	Content  layout.Rect
	Viewport layout.Size

	// Measured is false when either element has not been rendered yet.
	// Trigger and Content are meaningless in that case.
	Measured bool
}

// CandidatePosition returns the top-left corner of the content box for p.
// The content is centered on the trigger's cross axis and pushed offset
// away from it along the main axis. No clamping is applied; the result may
// lie outside the viewport.
func CandidatePosition(p Placement, trigger, content layout.Rect, offset float64) layout.Point {
	var pos layout.Point
	switch p {
	case Top:
		pos.X = trigger.Left() + trigger.Width/2 - content.Width/2
		pos.Y = trigger.Top() - content.Height - offset
	case Bottom:
		pos.X = trigger.Left() + trigger.Width/2 - content.Width/2
		pos.Y = trigger.Bottom() + offset
	case Left:
		pos.X = trigger.Left() - content.Width - offset
		pos.Y = trigger.Top() + trigger.Height/2 - content.Height/2
	case Right:
		pos.X = trigger.Right() + offset
		pos.Y = trigger.Top() + trigger.Height/2 - content.Height/2
	}
	return pos
}

// Fits reports whether content drawn at pos lies entirely inside the viewport.
func Fits(pos layout.Point, content layout.Rect, viewport layout.Size) bool {
	return viewport.ContainsRect(content.At(pos))
}

// Select returns the placement to use.
//
// With autoFlip disabled, or before both elements are measured, preferred is
// returned unchanged. Otherwise candidates are tried in the fixed order
// top, bottom, left, right and the first one that fits the viewport wins.
// When none fits the last candidate scanned (right) is returned.
func Select(preferred Placement, g Geometry, offset float64, autoFlip bool) Placement {
	if !autoFlip || !g.Measured {
		return preferred
	}

	chosen := preferred
	for _, candidate := range scanOrder {
		chosen = candidate
		pos := CandidatePosition(candidate, g.Trigger, g.Content, offset)
		if Fits(pos, g.Content, g.Viewport) {
			return candidate
		}
	}
	return chosen
}

// Compute selects a placement and returns it with its position.
// The position is meaningful only when g.Measured is true.
func Compute(preferred Placement, g Geometry, offset float64, autoFlip bool) (Placement, layout.Point) {
	p := Select(preferred, g, offset, autoFlip)
	return p, CandidatePosition(p, g.Trigger, g.Content, offset)
}
