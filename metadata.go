package tooltip

// Metadata describes a session at the moment a callback fires.
type Metadata struct {
	// ID identifies the session. It is stable for the session's lifetime.
	ID        string
	Placement Placement
	Mode      Mode
	IsOpen    bool
	Trigger   Element
	Content   Element
}

// Frame is what a host needs to draw the floating element.
type Frame struct {
	Visible   bool
	Position  Position
	Placement Placement
	MaxWidth  float64
	ZIndex    int
}
