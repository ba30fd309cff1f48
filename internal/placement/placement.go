package placement

import (
	"fmt"
	"strings"
)

// Placement is the side of the trigger the floating element is anchored to.
type Placement uint8

const (
	Top Placement = iota
	Bottom
	Left
	Right
)

// scanOrder is the order auto-flip evaluates candidates in. It does not start
// from the preferred placement.
var scanOrder = [...]Placement{Top, Bottom, Left, Right}

// ScanOrder returns the fixed candidate order used by Select.
func ScanOrder() []Placement {
	return append([]Placement(nil), scanOrder[:]...)
}

// String returns the lower-case name of the placement.
func (p Placement) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Placement(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the four placements.
func (p Placement) Valid() bool {
	return p <= Right
}

// Parse converts a name such as "top" or "RIGHT" into a Placement.
func Parse(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Top, fmt.Errorf("unknown placement %q (want top, bottom, left or right)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid placement %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
