package tooltip

// Element is a rendered element whose bounding box can be measured.
// Bounds returns false while the element is not mounted or not laid out.
type Element interface {
	Bounds() (Rect, bool)
}

// ElementFunc adapts a function to the Element interface.
type ElementFunc func() (Rect, bool)

// Bounds calls f.
func (f ElementFunc) Bounds() (Rect, bool) {
	return f()
}

// Host is the environment a Session lives in. Every method is called on
// demand and the results are never cached, since layout may change between
// calls.
type Host interface {
	// Trigger returns the element that controls visibility.
	Trigger() Element
	// Content returns the floating element. It may be nil or unmeasurable
	// while the tooltip is hidden.
	Content() Element
	// Viewport returns the current size of the visible area.
	Viewport() Viewport
}
