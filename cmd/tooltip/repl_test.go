package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tooltip "github.com/grindlemire/go-tooltip"
)

func TestParseCommand(t *testing.T) {
	type tc struct {
		line     string
		wantOp   opcode
		wantArgs []float64
		wantErr  string
	}

	tests := map[string]tc{
		"bare op":           {line: "enter", wantOp: opEnter},
		"case insensitive":  {line: "  CLICK ", wantOp: opClick},
		"trigger":           {line: "trigger 0 100 40 20", wantOp: opTrigger, wantArgs: []float64{0, 100, 40, 20}},
		"fractional":        {line: "content 120.5 32", wantOp: opContent, wantArgs: []float64{120.5, 32}},
		"unknown":           {line: "hover", wantErr: "unknown command"},
		"missing args":      {line: "viewport 800", wantErr: "takes 2 argument(s), got 1"},
		"extra args":        {line: "esc now", wantErr: "takes 0 argument(s)"},
		"not a number":      {line: "content wide 32", wantErr: "bad number"},
		"empty after space": {line: "   ", wantErr: "empty command"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := parseCommand(tt.line)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, cmd.op)
			assert.Equal(t, tt.wantArgs, cmd.args)
		})
	}
}

func newTestInterp(t *testing.T, opts ...tooltip.Option) (*interp, *tooltip.ManualScheduler) {
	t.Helper()
	sched := tooltip.NewManualScheduler()
	in, err := newInterp(newSimHost(), sched, opts)
	require.NoError(t, err)
	return in, sched
}

func run(t *testing.T, in *interp, lines ...string) {
	t.Helper()
	for _, line := range lines {
		cmd, err := parseCommand(line)
		require.NoError(t, err, line)
		quit, err := in.execute(cmd)
		require.NoError(t, err, line)
		require.False(t, quit, line)
	}
}

func TestInterp_HoverWithDelay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, traceKey)
	defer teardown()

	in, sched := newTestInterp(t, tooltip.WithOpenDelay(100*time.Millisecond))

	run(t, in, "enter")
	assert.Equal(t, tooltip.StateOpening, in.session.State())

	sched.Advance(100 * time.Millisecond)
	require.True(t, in.session.IsOpen())
	assert.Equal(t, tooltip.Top, in.session.Placement())

	run(t, in, "status", "leave")
	assert.Equal(t, tooltip.StateClosed, in.session.State())
}

func TestInterp_LeftEdgeFlipsRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, traceKey)
	defer teardown()

	in, _ := newTestInterp(t)

	run(t, in, "trigger 0 100 40 20", "enter")
	require.True(t, in.session.IsOpen())
	assert.Equal(t, tooltip.Right, in.session.Placement())
	assert.Equal(t, tooltip.Position{X: 48, Y: 94}, in.session.Position())

	// The simulated content box follows the session.
	r, ok := in.host.Content().Bounds()
	require.True(t, ok)
	assert.Equal(t, 48.0, r.X)
	assert.Equal(t, 94.0, r.Y)
}

func TestInterp_ClickAndOutside(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, traceKey)
	defer teardown()

	in, _ := newTestInterp(t, tooltip.WithMode(tooltip.Click))

	run(t, in, "enter")
	assert.False(t, in.session.IsOpen())

	run(t, in, "click")
	assert.True(t, in.session.IsOpen())

	run(t, in, "outside")
	assert.False(t, in.session.IsOpen())
}

func TestInterp_UnmountAndMount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, traceKey)
	defer teardown()

	in, _ := newTestInterp(t)
	first := in.session

	run(t, in, "unmount", "enter")
	assert.True(t, first.Unmounted())
	assert.False(t, first.IsOpen())

	run(t, in, "mount", "enter")
	assert.NotEqual(t, first.ID(), in.session.ID())
	assert.True(t, in.session.IsOpen())
}

func TestInterp_ViewportResizeRepositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, traceKey)
	defer teardown()

	in, _ := newTestInterp(t)
	run(t, in, "enter")
	require.Equal(t, tooltip.Top, in.session.Placement())

	// Trigger hugs the top edge; there is no room above it any more.
	run(t, in, "trigger 380 10 40 20", "resize")
	assert.Equal(t, tooltip.Bottom, in.session.Placement())
}

func TestInterp_Quit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, traceKey)
	defer teardown()

	in, _ := newTestInterp(t)
	cmd, err := parseCommand("quit")
	require.NoError(t, err)
	quit, err := in.execute(cmd)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestLoadOptions(t *testing.T) {
	opts, err := loadOptions("")
	require.NoError(t, err)
	assert.Nil(t, opts)

	path := filepath.Join(t.TempDir(), "tooltip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: click\nplacement: bottom\n"), 0o644))
	opts, err = loadOptions(path)
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	require.NoError(t, os.WriteFile(path, []byte("type: sideways\n"), 0o644))
	_, err = loadOptions(path)
	assert.Error(t, err)
}

func TestParseTraceLevel(t *testing.T) {
	for _, s := range []string{"Debug", "Info", "Error"} {
		_, err := parseTraceLevel(s)
		assert.NoError(t, err, s)
	}
	_, err := parseTraceLevel("Verbose")
	assert.Error(t, err)
}
