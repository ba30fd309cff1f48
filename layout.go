// layout.go re-exports geometry and placement types from internal packages.
// Any changes to internal/layout or internal/placement types must be mirrored here.
package tooltip

import (
	"github.com/grindlemire/go-tooltip/internal/layout"
	"github.com/grindlemire/go-tooltip/internal/placement"
)

// Rect is an axis-aligned bounding box in viewport coordinates.
type Rect = layout.Rect

// Position is the top-left corner at which the floating element is drawn.
type Position = layout.Point

// Viewport is the size of the visible area, anchored at the origin.
type Viewport = layout.Size

// Placement is the side of the trigger the floating element is anchored to.
type Placement = placement.Placement

const (
	Top    = placement.Top
	Bottom = placement.Bottom
	Left   = placement.Left
	Right  = placement.Right
)

// Geometry is one measurement of trigger, content and viewport.
type Geometry = placement.Geometry

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectFromEdges creates a Rect from its left, top, right and bottom edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return layout.RectFromEdges(left, top, right, bottom)
}

// NewViewport creates a Viewport of the given size.
func NewViewport(width, height float64) Viewport {
	return layout.NewSize(width, height)
}

// ParsePlacement converts a name such as "top" into a Placement.
func ParsePlacement(s string) (Placement, error) {
	return placement.Parse(s)
}

// CandidatePosition returns where content would be drawn for placement p,
// without any viewport correction.
func CandidatePosition(p Placement, trigger, content Rect, offset float64) Position {
	return placement.CandidatePosition(p, trigger, content, offset)
}

// SelectPlacement picks the placement to use for the given geometry.
// See placement.Select for the scan order and fallback rules.
func SelectPlacement(preferred Placement, g Geometry, offset float64, autoFlip bool) Placement {
	return placement.Select(preferred, g, offset, autoFlip)
}

// ComputePlacement selects a placement and returns it with its position.
func ComputePlacement(preferred Placement, g Geometry, offset float64, autoFlip bool) (Placement, Position) {
	return placement.Compute(preferred, g, offset, autoFlip)
}
