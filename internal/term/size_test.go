package term

import (
	"os"
	"testing"
)

func TestSize_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	if _, _, err := Size(int(r.Fd())); err == nil {
		t.Error("Size() on a pipe expected error")
	}
	if _, err := MakeRaw(int(r.Fd())); err == nil {
		t.Error("MakeRaw() on a pipe expected error")
	}

	width, height := SizeOrDefault(int(r.Fd()))
	if width != DefaultWidth || height != DefaultHeight {
		t.Errorf("SizeOrDefault() = %dx%d, want %dx%d", width, height, DefaultWidth, DefaultHeight)
	}
}
