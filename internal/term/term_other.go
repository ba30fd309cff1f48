//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package term

import (
	"errors"
	"os"
	"time"
)

// ErrUnsupported is returned on platforms without termios support.
var ErrUnsupported = errors.New("term: not supported on this platform")

// Size returns ErrUnsupported.
func Size(fd int) (width, height int, err error) {
	return 0, 0, ErrUnsupported
}

// MakeRaw returns ErrUnsupported.
func MakeRaw(fd int) (restore func() error, err error) {
	return nil, ErrUnsupported
}

// WaitReadable returns ErrUnsupported.
func WaitReadable(fd int, timeout time.Duration) (bool, error) {
	return false, ErrUnsupported
}

// Read returns ErrUnsupported.
func Read(fd int, buf []byte) (int, error) {
	return 0, ErrUnsupported
}

// NotifyResize does nothing.
func NotifyResize(ch chan<- os.Signal) {}
