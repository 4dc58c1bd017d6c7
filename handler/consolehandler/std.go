package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/formatter"
)

// ColorMode selects when StdConsole colours its output
type ColorMode int

const (
	// ColorAuto colours output written to a terminal
	ColorAuto ColorMode = iota
	// ColorAlways colours all output
	ColorAlways
	// ColorNever never colours output
	ColorNever
)

// StdConfig holds configuration for StdConsole
type StdConfig struct {
	// Out receives generic, trace, debug and info output (default: os.Stdout)
	Out io.Writer
	// Err receives warn and error output (default: os.Stderr)
	Err io.Writer
	// Formatter renders each line (default: TextFormatter)
	Formatter formatter.Formatter
	// Color selects colouring (default: ColorAuto)
	Color ColorMode
}

// applyStdDefaults fills in zero-value fields with defaults.
func applyStdDefaults(cfg *StdConfig) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

var levelColors = map[int]*color.Color{
	core.TraceLevel.Value: color.New(color.FgHiBlack),
	core.DebugLevel.Value: color.New(color.FgCyan),
	core.InfoLevel.Value:  color.New(color.FgGreen),
	core.WarnLevel.Value:  color.New(color.FgYellow),
	core.ErrorLevel.Value: color.New(color.FgRed),
}

func init() {
	// Colour decisions are made per writer, not by the process-wide NoColor
	for _, c := range levelColors {
		c.EnableColor()
	}
}

// StdConsole is a Console writing formatted lines to io.Writers. It offers
// every optional capability, native timers included.
type StdConsole struct {
	out       io.Writer
	err       io.Writer
	formatter formatter.Formatter
	colorOut  bool
	colorErr  bool

	mu     sync.Mutex // serializes writes and protects timers
	line   bytes.Buffer
	timers map[string]time.Time
}

// NewStdConsole creates a console writing to cfg.Out and cfg.Err
func NewStdConsole(cfg StdConfig) *StdConsole {
	applyStdDefaults(&cfg)
	c := &StdConsole{
		formatter: cfg.Formatter,
		timers:    make(map[string]time.Time),
	}
	c.out, c.colorOut = prepareWriter(cfg.Out, cfg.Color)
	c.err, c.colorErr = prepareWriter(cfg.Err, cfg.Color)
	return c
}

// prepareWriter decides colouring for w and wraps terminals so ANSI
// sequences also work on Windows consoles
func prepareWriter(w io.Writer, mode ColorMode) (io.Writer, bool) {
	switch mode {
	case ColorNever:
		return w, false
	case ColorAlways:
		return w, true
	}
	f, ok := w.(*os.File)
	if !ok {
		return w, false
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return w, false
	}
	return colorable.NewColorable(f), true
}

// Detect probes the process for a usable console. It returns nil when
// standard output is closed or missing.
func Detect() Console {
	if os.Stdout == nil {
		return nil
	}
	if _, err := os.Stdout.Stat(); err != nil {
		return nil
	}
	return NewStdConsole(StdConfig{})
}

// Log writes a line without level
func (c *StdConsole) Log(args ...any) { c.write(core.Level{}, args) }

// Trace writes a TRACE line
func (c *StdConsole) Trace(args ...any) { c.write(core.TraceLevel, args) }

// Debug writes a DEBUG line
func (c *StdConsole) Debug(args ...any) { c.write(core.DebugLevel, args) }

// Info writes an INFO line
func (c *StdConsole) Info(args ...any) { c.write(core.InfoLevel, args) }

// Warn writes a WARN line to the error writer
func (c *StdConsole) Warn(args ...any) { c.write(core.WarnLevel, args) }

// Error writes an ERROR line to the error writer
func (c *StdConsole) Error(args ...any) { c.write(core.ErrorLevel, args) }

// Time starts the timer label
func (c *StdConsole) Time(label string) {
	c.mu.Lock()
	c.timers[label] = now()
	c.mu.Unlock()
}

// TimeEnd writes "label: <elapsed>" and forgets the timer. A label that
// was never started is measured from the Unix epoch, as in the Handler
// fallback.
func (c *StdConsole) TimeEnd(label string) {
	c.mu.Lock()
	start, ok := c.timers[label]
	delete(c.timers, label)
	c.mu.Unlock()
	if !ok {
		start = time.UnixMilli(0)
	}
	c.write(core.Level{}, []any{label + ":", now().Sub(start)})
}

func (c *StdConsole) write(level core.Level, args []any) {
	w, colored := c.out, c.colorOut
	if level.AtLeast(core.WarnLevel) {
		w, colored = c.err, c.colorErr
	}

	e := core.GetEntry()
	e.Level = level
	e.Messages = append(e.Messages, args...)
	defer core.PutEntry(e)

	c.mu.Lock()
	defer c.mu.Unlock()

	col, ok := levelColors[level.Value]
	if !colored || !ok {
		_ = formatter.WriteEntry(c.formatter, e, w)
		return
	}

	c.line.Reset()
	if err := formatter.WriteEntry(c.formatter, e, &c.line); err != nil {
		return
	}
	line := bytes.TrimSuffix(c.line.Bytes(), []byte{'\n'})
	_, _ = col.Fprintln(w, string(line))
}
