package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	tooltip "github.com/grindlemire/go-tooltip"
)

type opcode int

const (
	opQuit opcode = iota
	opHelp
	opTrigger
	opContent
	opViewport
	opEnter
	opLeave
	opClick
	opOutside
	opEsc
	opScroll
	opResize
	opDisable
	opEnable
	opUnmount
	opMount
	opStatus
)

var opMap = map[string]opcode{
	"quit":     opQuit,
	"help":     opHelp,
	"trigger":  opTrigger,
	"content":  opContent,
	"viewport": opViewport,
	"enter":    opEnter,
	"leave":    opLeave,
	"click":    opClick,
	"outside":  opOutside,
	"esc":      opEsc,
	"scroll":   opScroll,
	"resize":   opResize,
	"disable":  opDisable,
	"enable":   opEnable,
	"unmount":  opUnmount,
	"mount":    opMount,
	"status":   opStatus,
}

// opArity is the number of numeric arguments an op takes. Missing ops take none.
var opArity = map[opcode]int{
	opTrigger:  4,
	opContent:  2,
	opViewport: 2,
}

const helpText = `Commands:
  trigger x y w h    set the trigger box
  content w h        set the measured content size
  viewport w h       set the viewport size
  enter | leave      pointer enters or leaves the trigger
  click              click on the trigger
  outside            click outside trigger and content
  esc                press Escape
  scroll | resize    notify the session of a layout change
  disable | enable   toggle the disabled flag
  unmount | mount    destroy or recreate the session
  status             print the session state
  quit               leave the REPL`

type command struct {
	op   opcode
	name string
	args []float64
}

// parseCommand reads one REPL line, e.g. "trigger 10 20 40 16".
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errors.New("empty command")
	}
	name := strings.ToLower(fields[0])
	op, ok := opMap[name]
	if !ok {
		return command{}, fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}

	want := opArity[op]
	if len(fields)-1 != want {
		return command{}, fmt.Errorf("%s takes %d argument(s), got %d", name, want, len(fields)-1)
	}
	cmd := command{op: op, name: name}
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return command{}, fmt.Errorf("%s: bad number %q", name, f)
		}
		cmd.args = append(cmd.args, v)
	}
	return cmd, nil
}

// interp owns the simulated host and its session. All methods run on the
// scheduler's goroutine.
type interp struct {
	host    *simHost
	sched   tooltip.Scheduler
	opts    []tooltip.Option
	session *tooltip.Session
}

func newInterp(host *simHost, sched tooltip.Scheduler, opts []tooltip.Option) (*interp, error) {
	in := &interp{host: host, sched: sched, opts: opts}
	if err := in.mount(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *interp) mount() error {
	callbacks := []tooltip.Option{
		tooltip.WithOnOpen(func(m tooltip.Metadata) {
			pterm.Success.Printf("open (%s, %s)\n", m.Placement, m.Mode)
		}),
		tooltip.WithOnClose(func(m tooltip.Metadata) {
			pterm.Success.Printf("closed (%s)\n", m.Placement)
		}),
		tooltip.WithOnPlacementChange(func(p tooltip.Placement) {
			tracer().Infof("placement changed to %s", p)
		}),
	}
	s, err := tooltip.NewSession(in.host, in.sched, append(callbacks, in.opts...)...)
	if err != nil {
		return err
	}
	if in.session != nil {
		in.session.Unmount()
	}
	in.session = s
	tracer().Debugf("mounted session %s", s.ID())
	return nil
}

// execute applies one command and reports whether the REPL should stop.
func (in *interp) execute(cmd command) (quit bool, err error) {
	tracer().Debugf("cmd = %s %v", cmd.name, cmd.args)
	s := in.session
	switch cmd.op {
	case opQuit:
		return true, nil
	case opHelp:
		pterm.Println(helpText)
	case opTrigger:
		in.host.trigger = simElement{rect: tooltip.NewRect(cmd.args[0], cmd.args[1], cmd.args[2], cmd.args[3]), measured: true}
		s.Reposition()
	case opContent:
		in.host.setContentSize(cmd.args[0], cmd.args[1])
		s.Reposition()
	case opViewport:
		in.host.viewport = tooltip.NewViewport(cmd.args[0], cmd.args[1])
		s.Resize()
	case opEnter:
		s.PointerEnter()
	case opLeave:
		s.PointerLeave()
	case opClick:
		s.Click()
	case opOutside:
		s.ClickOutside()
	case opEsc:
		s.Escape()
	case opScroll:
		s.Scroll()
	case opResize:
		s.Resize()
	case opDisable:
		s.SetDisabled(true)
	case opEnable:
		s.SetDisabled(false)
	case opUnmount:
		s.Unmount()
	case opMount:
		if err := in.mount(); err != nil {
			return false, err
		}
	case opStatus:
		in.printStatus()
	default:
		return false, fmt.Errorf("unhandled command %q", cmd.name)
	}
	in.sync()
	return false, nil
}

// sync moves the simulated content box to where the session placed it.
func (in *interp) sync() {
	if in.session.IsOpen() {
		in.host.moveContent(in.session.Position())
	}
}

func (in *interp) printStatus() {
	s := in.session
	f := s.Frame()
	data := [][]string{
		{"Field", "Value"},
		{"id", s.ID()},
		{"mode", s.Mode().String()},
		{"state", s.State().String()},
		{"open", strconv.FormatBool(s.IsOpen())},
		{"placement", f.Placement.String()},
		{"position", fmt.Sprintf("(%g, %g)", f.Position.X, f.Position.Y)},
		{"disabled", strconv.FormatBool(s.Disabled())},
		{"unmounted", strconv.FormatBool(s.Unmounted())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// run reads commands until EOF or quit and executes each one on the loop.
func (in *interp) run(ctx context.Context, loop *tooltip.Loop, repl *readline.Instance) error {
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}

		var quit bool
		var execErr error
		if err := loop.Do(ctx, func() { quit, execErr = in.execute(cmd) }); err != nil {
			if errors.Is(err, tooltip.ErrLoopStopped) {
				return nil
			}
			return err
		}
		if execErr != nil {
			pterm.Error.Println(execErr)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func runREPL(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML file with session options")
	tlevel := fs.String("trace", "Info", "Trace level [Debug|Info|Error]")
	if err := fs.Parse(args); err != nil {
		return err
	}

	initDisplay()
	if err := setupTracing(); err != nil {
		return err
	}
	level, err := parseTraceLevel(*tlevel)
	if err != nil {
		return err
	}
	tracer().SetTraceLevel(level)
	if level == tracing.LevelDebug {
		tooltip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		return err
	}

	loop, err := tooltip.NewLoop()
	if err != nil {
		return err
	}
	in, err := newInterp(newSimHost(), loop, opts)
	if err != nil {
		return err
	}

	repl, err := readline.New("tooltip > ")
	if err != nil {
		return err
	}
	defer repl.Close()

	pterm.Info.Println("Welcome to the tooltip REPL, type 'help' for commands")
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		defer loop.Stop()
		return in.run(ctx, loop, repl)
	})
	return g.Wait()
}

// loadOptions reads session options from a YAML file. An empty path yields none.
func loadOptions(path string) ([]tooltip.Option, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := tooltip.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded config %s", path)
	return cfg.Options()
}
