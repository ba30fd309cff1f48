package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	tooltip "github.com/grindlemire/go-tooltip"
	"github.com/grindlemire/go-tooltip/internal/debug"
	"github.com/grindlemire/go-tooltip/internal/term"
)

const (
	triggerLabel = "[ hover me ]"
	contentText  = "Hello from go-tooltip"
	pollInterval = 50 * time.Millisecond
)

// live is a terminal host: one trigger label in the middle of the screen and
// a boxed tooltip drawn wherever the session places it. Everything except
// input reading runs on the loop.
type live struct {
	loop    *tooltip.Loop
	host    *simHost
	session *tooltip.Session
	out     *os.File
	buf     *term.Builder
}

// renderScheduler redraws after every timer callback so delayed opens and
// closes show up without further input.
type renderScheduler struct {
	lv *live
}

func (r renderScheduler) AfterFunc(d time.Duration, fn func()) tooltip.Timer {
	return r.lv.loop.AfterFunc(d, func() {
		fn()
		r.lv.sync()
		r.lv.render()
	})
}

func newLive(loop *tooltip.Loop, out *os.File, width, height int, opts []tooltip.Option) (*live, error) {
	lv := &live{
		loop: loop,
		host: newSimHost(),
		out:  out,
		buf:  term.NewBuilder(4096),
	}
	lv.layout(width, height)

	// Terminal cells are much coarser than pixels, so shrink the gap and
	// width cap before the user's options apply.
	all := append([]tooltip.Option{
		tooltip.WithOffset(1),
		tooltip.WithMaxWidth(40),
	}, opts...)
	s, err := tooltip.NewSession(lv.host, renderScheduler{lv: lv}, all...)
	if err != nil {
		return nil, err
	}
	lv.session = s
	return lv, nil
}

// layout centres the trigger and sizes the content box for a terminal of
// width x height cells.
func (lv *live) layout(width, height int) {
	lv.host.viewport = tooltip.NewViewport(float64(width), float64(height))
	w := float64(len(triggerLabel))
	x := math.Floor((float64(width) - w) / 2)
	y := math.Floor(float64(height) / 2)
	lv.host.trigger = simElement{rect: tooltip.NewRect(x, y, w, 1), measured: true}
	lv.host.setContentSize(float64(len(contentText)+4), 3)
}

// handle applies a batch of parsed input on the loop and redraws.
func (lv *live) handle(events []tooltip.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case tooltip.KeyEvent:
			if e.Is(tooltip.KeyCtrlC) || (e.Key == tooltip.KeyRune && e.Rune == 'q') {
				lv.loop.Stop()
				return
			}
			if e.Key == tooltip.KeyRune && e.Rune == 'd' {
				lv.session.SetDisabled(!lv.session.Disabled())
			}
		case tooltip.ResizeEvent:
			lv.layout(e.Width, e.Height)
		}
		lv.session.HandleEvent(ev)
	}
	lv.sync()
	lv.render()
}

func (lv *live) sync() {
	if lv.session.IsOpen() {
		lv.host.moveContent(lv.session.Position())
	}
}

func (lv *live) render() {
	b := lv.buf
	b.Reset()
	b.Clear()

	s := lv.session
	f := s.Frame()
	status := fmt.Sprintf(" mode=%s state=%s placement=%s disabled=%t   q quits, d toggles disabled",
		s.Mode(), s.State(), f.Placement, s.Disabled())
	lv.text(0, 0, status)

	tr := lv.host.trigger.rect
	b.Bold()
	lv.text(int(tr.X), int(tr.Y), triggerLabel)
	b.ResetStyle()

	if f.Visible {
		cr := lv.host.content.rect.WithMaxWidth(f.MaxWidth)
		lv.box(int(math.Round(f.Position.X)), int(math.Round(f.Position.Y)), int(cr.Width), contentText)
	}

	if _, err := lv.out.Write(b.Bytes()); err != nil {
		debug.Log("render write failed: %v", err)
	}
}

// box draws a three-row bordered box with text in the middle row.
func (lv *live) box(x, y, width int, text string) {
	if width < 3 {
		return
	}
	inner := width - 2
	if len(text) > inner-1 {
		text = text[:max(inner-1, 0)]
	}
	edge := "+" + strings.Repeat("-", inner) + "+"
	mid := "| " + text + strings.Repeat(" ", inner-len(text)-1) + "|"

	lv.buf.Reverse()
	lv.text(x, y, edge)
	lv.text(x, y+1, mid)
	lv.text(x, y+2, edge)
	lv.buf.ResetStyle()
}

// text writes s at (x, y), clipped to the viewport.
func (lv *live) text(x, y int, s string) {
	vp := lv.host.viewport
	if y < 0 || y >= int(vp.Height) {
		return
	}
	if x < 0 {
		if -x >= len(s) {
			return
		}
		s = s[-x:]
		x = 0
	}
	if over := x + len(s) - int(vp.Width); over > 0 {
		if over >= len(s) {
			return
		}
		s = s[:len(s)-over]
	}
	lv.buf.MoveTo(x, y)
	lv.buf.WriteString(s)
}

// readInput polls stdin and posts parsed events to the loop until it stops.
func (lv *live) readInput(fd int) error {
	buf := make([]byte, 256)
	for !lv.loop.Stopped() {
		ready, err := term.WaitReadable(fd, pollInterval)
		if err != nil {
			return fmt.Errorf("wait for input: %w", err)
		}
		if !ready {
			continue
		}
		n, err := term.Read(fd, buf)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		events := tooltip.ParseInput(buf[:n])
		if len(events) == 0 {
			continue
		}
		if err := lv.loop.QueueUpdate(func() { lv.handle(events) }); err != nil {
			return nil
		}
	}
	return nil
}

// watchResize turns SIGWINCH into ResizeEvents.
func (lv *live) watchResize(fd int) error {
	sigCh := make(chan os.Signal, 1)
	term.NotifyResize(sigCh)
	defer signal.Stop(sigCh)
	for {
		select {
		case <-sigCh:
			w, h := term.SizeOrDefault(fd)
			debug.Log("resize %dx%d", w, h)
			ev := tooltip.ResizeEvent{Width: w, Height: h}
			if err := lv.loop.QueueUpdate(func() { lv.handle([]tooltip.Event{ev}) }); err != nil {
				return nil
			}
		case <-lv.loop.Done():
			return nil
		}
	}
}

func runLive(args []string) error {
	fs := flag.NewFlagSet("live", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML file with session options")
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts, err := loadOptions(*configPath)
	if err != nil {
		return err
	}

	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())
	restore, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer restore()

	setup := term.NewBuilder(64)
	setup.EnterAltScreen()
	setup.HideCursor()
	setup.EnableMouse()
	os.Stdout.Write(setup.Bytes())
	defer func() {
		teardown := term.NewBuilder(64)
		teardown.DisableMouse()
		teardown.ShowCursor()
		teardown.ExitAltScreen()
		os.Stdout.Write(teardown.Bytes())
	}()

	loop, err := tooltip.NewLoop()
	if err != nil {
		return err
	}
	w, h := term.SizeOrDefault(outFd)
	lv, err := newLive(loop, os.Stdout, w, h, opts)
	if err != nil {
		return err
	}
	debug.Log("live host %dx%d session=%s", w, h, lv.session.ID())

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		defer loop.Stop()
		return lv.readInput(inFd)
	})
	g.Go(func() error {
		return lv.watchResize(outFd)
	})
	if err := loop.QueueUpdate(lv.render); err != nil {
		return err
	}
	return g.Wait()
}
