package layout

// Size represents a width/height pair. The visible viewport is a Size
// anchored at the origin.
type Size struct {
	Width, Height float64
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Bounds returns the Size as a Rect anchored at the origin.
func (s Size) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// ContainsRect reports whether r lies entirely inside [0, Width] x [0, Height].
// Edges are inclusive, so a box flush with the viewport edge still fits.
func (s Size) ContainsRect(r Rect) bool {
	return r.X >= 0 && r.Right() <= s.Width && r.Y >= 0 && r.Bottom() <= s.Height
}
