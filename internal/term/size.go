package term

// Default dimensions used when the terminal size cannot be read.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// SizeOrDefault returns the terminal size, falling back to 80x24.
func SizeOrDefault(fd int) (width, height int) {
	w, h, err := Size(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
