//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package term

import (
	"os"
	"testing"
	"time"
)

func TestWaitReadable(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	fd := int(r.Fd())
	ready, err := WaitReadable(fd, 10*time.Millisecond)
	if err != nil || ready {
		t.Fatalf("empty pipe: ready=%v err=%v, want false nil", ready, err)
	}

	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	ready, err = WaitReadable(fd, time.Second)
	if err != nil || !ready {
		t.Fatalf("after write: ready=%v err=%v, want true nil", ready, err)
	}

	buf := make([]byte, 4)
	n, err := Read(fd, buf)
	if err != nil || n != 1 || buf[0] != 'x' {
		t.Errorf("Read() = %d %q %v, want 1 \"x\" nil", n, buf[:n], err)
	}
}
