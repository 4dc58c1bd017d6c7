package logger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/levelog/core"
)

type call struct {
	messages []any
	ctx      core.Context
}

// recorder collects every dispatch it receives
type recorder struct {
	mu    sync.Mutex
	calls []call
}

func (r *recorder) Handle(messages []any, ctx core.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{messages: messages, ctx: ctx})
}

func (r *recorder) all() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}

func newRecorded(level Level) (*Facade, *recorder) {
	rec := &recorder{}
	f := NewBuilder().WithHandler(rec).WithLevel(level).Build()
	return f, rec
}

func TestNew_Defaults(t *testing.T) {
	f := New()

	assert.Equal(t, OffLevel, f.GetLevel())
	assert.Nil(t, f.Handler())
	assert.Equal(t, "", f.Global().Name())
	assert.Empty(t, f.Names())
}

func TestLogger_LevelGate(t *testing.T) {
	for _, threshold := range core.Levels() {
		f, rec := newRecorded(threshold)
		l := f.Global()

		l.Trace("t")
		l.Debug("d")
		l.Info("i")
		l.Time("label")
		l.Warn("w")
		l.Error("e")

		var want int
		for _, lvl := range []Level{TraceLevel, DebugLevel, InfoLevel, TimeLevel, WarnLevel, ErrorLevel} {
			if lvl.Value >= threshold.Value {
				want++
			}
		}
		assert.Len(t, rec.all(), want, "threshold %s", threshold)
	}
}

func TestLogger_EnabledForIsMonotonic(t *testing.T) {
	f := NewBuilder().WithLevel(WarnLevel).Build()
	l := f.Global()

	assert.False(t, l.EnabledFor(TraceLevel))
	assert.False(t, l.EnabledFor(InfoLevel))
	assert.False(t, l.EnabledFor(TimeLevel))
	assert.True(t, l.EnabledFor(WarnLevel))
	assert.True(t, l.EnabledFor(ErrorLevel))
	assert.True(t, l.EnabledFor(DefineLevel(6, "NOTICE")))
	assert.True(t, l.EnabledFor(OffLevel))
}

func TestLogger_HandlerSeesDispatchedLevel(t *testing.T) {
	f, rec := newRecorded(TraceLevel)

	f.Get("db").Warn("slow", 250)

	calls := rec.all()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"slow", 250}, calls[0].messages)
	assert.Equal(t, WarnLevel, calls[0].ctx.Level)
	assert.Equal(t, "db", calls[0].ctx.Name)
}

func TestLogger_MessagesPassedThrough(t *testing.T) {
	f, rec := newRecorded(TraceLevel)

	payload := map[string]int{"n": 1}
	err := fmt.Errorf("boom")
	f.Info("a", 1, payload, err, nil)

	calls := rec.all()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"a", 1, payload, err, nil}, calls[0].messages)
}

func TestLogger_LogIsInfo(t *testing.T) {
	f, rec := newRecorded(InfoLevel)

	f.Log("hello")
	f.Global().Log("again")

	calls := rec.all()
	require.Len(t, calls, 2)
	for _, c := range calls {
		assert.Equal(t, InfoLevel, c.ctx.Level)
	}

	f.SetLevel(WarnLevel)
	f.Log("dropped")
	assert.Len(t, rec.all(), 2)
}

func TestLogger_Timers(t *testing.T) {
	f, rec := newRecorded(TimeLevel)

	f.Time("x")
	f.TimeEnd("x")
	f.Time("")
	f.TimeEnd("")

	calls := rec.all()
	require.Len(t, calls, 2)
	assert.Equal(t, []any{"x", "start"}, calls[0].messages)
	assert.Equal(t, []any{"x", "end"}, calls[1].messages)
	assert.Equal(t, TimeLevel, calls[0].ctx.Level)
	assert.Equal(t, TimeLevel, calls[1].ctx.Level)
}

func TestLogger_TimersFilteredAboveTime(t *testing.T) {
	f, rec := newRecorded(WarnLevel)

	f.Time("x")
	f.TimeEnd("x")

	assert.Empty(t, rec.all())
}

func TestLogger_SetLevelIgnoresInvalid(t *testing.T) {
	f := NewBuilder().WithLevel(InfoLevel).Build()
	l := f.Get("svc")

	l.SetLevel(Level{})
	assert.Equal(t, InfoLevel, l.GetLevel())

	f.SetLevel(Level{})
	assert.Equal(t, InfoLevel, f.GetLevel())
	assert.Equal(t, InfoLevel, l.GetLevel())
}

func TestLogger_InvalidInitialLevelFallsBackToOff(t *testing.T) {
	f := NewBuilder().WithLevel(Level{}).Build()
	assert.Equal(t, OffLevel, f.GetLevel())
}

func TestLogger_CustomLevel(t *testing.T) {
	notice := DefineLevel(6, "NOTICE")
	f, rec := newRecorded(notice)

	f.Warn("below")
	f.Error("above")

	calls := rec.all()
	require.Len(t, calls, 1)
	assert.Equal(t, ErrorLevel, calls[0].ctx.Level)
	assert.Equal(t, notice, f.GetLevel())
}

func TestLogger_FormattedVariants(t *testing.T) {
	f, rec := newRecorded(TraceLevel)

	f.Tracef("t=%d", 1)
	f.Debugf("d=%d", 2)
	f.Infof("i=%s", "x")
	f.Warnf("w=%v", true)
	f.Errorf("e=%.1f", 1.5)

	calls := rec.all()
	require.Len(t, calls, 5)
	assert.Equal(t, []any{"t=1"}, calls[0].messages)
	assert.Equal(t, []any{"d=2"}, calls[1].messages)
	assert.Equal(t, []any{"i=x"}, calls[2].messages)
	assert.Equal(t, []any{"w=true"}, calls[3].messages)
	assert.Equal(t, []any{"e=1.5"}, calls[4].messages)
	assert.Equal(t, ErrorLevel, calls[4].ctx.Level)
}

type countingStringer struct{ n *int }

func (c countingStringer) String() string {
	*c.n++
	return "formatted"
}

func TestLogger_FormattedVariantsSkipFormattingWhenFiltered(t *testing.T) {
	f, rec := newRecorded(ErrorLevel)

	var n int
	f.Debugf("%s", countingStringer{&n})

	assert.Empty(t, rec.all())
	assert.Zero(t, n)
}

func TestLogger_NoHandlerIsNoop(t *testing.T) {
	f := NewBuilder().WithLevel(TraceLevel).Build()

	assert.NotPanics(t, func() {
		f.Info("nobody listens")
		f.Get("x").Error("still nobody")
		f.Time("t")
	})
}

func TestLogger_HandlerPanicPropagates(t *testing.T) {
	f := NewBuilder().
		WithLevel(InfoLevel).
		WithHandler(HandlerFunc(func([]any, Context) { panic("sink") })).
		Build()

	assert.PanicsWithValue(t, "sink", func() { f.Info("x") })
}

func TestLogger_Context(t *testing.T) {
	f := NewBuilder().WithLevel(DebugLevel).Build()
	l := f.Get("api")

	assert.Equal(t, Context{Level: DebugLevel, Name: "api"}, l.Context())
}

func TestFacade_GetReturnsSameLogger(t *testing.T) {
	f := New()

	a := f.Get("a")
	assert.Same(t, a, f.Get("a"))
	assert.NotSame(t, a, f.Get("b"))
	assert.Equal(t, "a", a.Name())
	assert.Equal(t, []string{"a", "b"}, f.Names())
	assert.Equal(t, 2, f.Len())
}

func TestFacade_GetConcurrent(t *testing.T) {
	f := New()

	const n = 32
	got := make([]*Logger, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = f.Get("shared")
		}(i)
	}
	wg.Wait()

	for _, l := range got {
		assert.Same(t, got[0], l)
	}
	assert.Equal(t, 1, f.Len())
}

func TestFacade_NamedLoggerSnapshotsGlobalLevel(t *testing.T) {
	f := NewBuilder().WithLevel(WarnLevel).Build()

	l := f.Get("db")
	assert.Equal(t, WarnLevel, l.GetLevel())

	f.Global().SetLevel(DebugLevel)
	assert.Equal(t, WarnLevel, l.GetLevel(), "named logger must not follow the global logger")

	assert.Equal(t, DebugLevel, f.Get("later").GetLevel())
}

func TestFacade_SetLevelCascades(t *testing.T) {
	f := New()
	a := f.Get("a")
	b := f.Get("b")
	b.SetLevel(TraceLevel)

	f.SetLevel(ErrorLevel)

	assert.Equal(t, ErrorLevel, f.GetLevel())
	assert.Equal(t, ErrorLevel, a.GetLevel())
	assert.Equal(t, ErrorLevel, b.GetLevel())
}

func TestFacade_NamedLevelIndependentOfGlobal(t *testing.T) {
	f, rec := newRecorded(OffLevel)

	db := f.Get("db")
	db.SetLevel(DebugLevel)

	db.Debug("x")
	f.Error("y")

	calls := rec.all()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"x"}, calls[0].messages)
	assert.Equal(t, Context{Level: DebugLevel, Name: "db"}, calls[0].ctx)
}

func TestFacade_SetHandlerReplaces(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	f := NewBuilder().WithLevel(InfoLevel).WithHandler(first).Build()
	named := f.Get("svc")

	f.Info("one")
	f.SetHandler(second)
	f.Info("two")
	named.Info("three")

	assert.Len(t, first.all(), 1)
	assert.Len(t, second.all(), 2, "existing loggers must see the new handler")

	f.SetHandler(nil)
	f.Info("four")
	assert.Len(t, second.all(), 2)
}

func TestFacade_SetHandlerTypedNil(t *testing.T) {
	f, rec := newRecorded(InfoLevel)

	var fn HandlerFunc
	f.SetHandler(fn)
	assert.Nil(t, f.Handler())
	assert.NotPanics(t, func() {
		f.Info("x")
		f.Get("db").Error("y")
	})
	assert.Empty(t, rec.all())

	built := NewBuilder().WithLevel(InfoLevel).WithHandler(fn).Build()
	assert.Nil(t, built.Handler())
	assert.NotPanics(t, func() { built.Info("x") })
}

func TestFacade_EndToEndDebugThreshold(t *testing.T) {
	f, rec := newRecorded(OffLevel)
	f.SetLevel(DebugLevel)

	f.Trace("t")
	f.Debug("a")
	f.Info("b")
	f.Warn("c")
	f.Error("d")

	calls := rec.all()
	require.Len(t, calls, 4)
	want := []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
	wantMsg := []string{"a", "b", "c", "d"}
	for i, w := range want {
		assert.Equal(t, w, calls[i].ctx.Level)
		assert.Equal(t, wantMsg[i], calls[i].messages[0])
	}
}

func TestFacade_EndToEndOffThreshold(t *testing.T) {
	f, rec := newRecorded(DebugLevel)
	f.SetLevel(OffLevel)

	f.Trace("a")
	f.Debug("b")
	f.Info("c")
	f.Warn("d")
	f.Error("e")
	f.Time("t")
	f.TimeEnd("t")

	assert.Empty(t, rec.all())
}

func TestFacade_ConcurrentDispatchAndSetLevel(t *testing.T) {
	var delivered int64
	var mu sync.Mutex
	f := NewBuilder().
		WithLevel(InfoLevel).
		WithHandler(HandlerFunc(func([]any, Context) {
			mu.Lock()
			delivered++
			mu.Unlock()
		})).
		Build()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			f.Get(fmt.Sprintf("w%d", i%3)).Error("x")
		}(i)
		go func() {
			defer wg.Done()
			f.SetLevel(ErrorLevel)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8), delivered)
	for _, name := range f.Names() {
		assert.Equal(t, ErrorLevel, f.Get(name).GetLevel())
	}
}

type fakeConsole struct {
	mu   sync.Mutex
	logs [][]any
}

func (c *fakeConsole) Log(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, args)
}

func TestFacade_UseDefaults(t *testing.T) {
	console := &fakeConsole{}
	f := New()

	f.UseDefaults(Options{Console: console})
	assert.Equal(t, DebugLevel, f.GetLevel())

	f.Trace("hidden")
	f.Get("db").Info("connected")

	require.Len(t, console.logs, 1)
	assert.Equal(t, []any{"[db]", "connected"}, console.logs[0])
}

func TestFacade_UseDefaultsWithLevel(t *testing.T) {
	console := &fakeConsole{}
	f := New()

	f.UseDefaults(Options{Console: console, DefaultLevel: WarnLevel})
	assert.Equal(t, WarnLevel, f.GetLevel())

	f.Info("hidden")
	f.Warn("shown")
	require.Len(t, console.logs, 1)
	assert.Equal(t, []any{"shown"}, console.logs[0])
}

func TestFacade_UseDefaultsCustomFormatter(t *testing.T) {
	console := &fakeConsole{}
	f := New()

	f.UseDefaults(Options{
		Console: console,
		Formatter: func(messages []any, ctx Context) []any {
			return append([]any{ctx.Level.String()}, messages...)
		},
	})
	f.Error("bad")

	require.Len(t, console.logs, 1)
	assert.Equal(t, []any{"ERROR", "bad"}, console.logs[0])
}

func TestFacade_CreateDefaultHandler(t *testing.T) {
	console := &fakeConsole{}
	f := New()

	h := f.CreateDefaultHandler(Options{Console: console})
	require.NotNil(t, h)
	assert.Nil(t, f.Handler(), "CreateDefaultHandler must not install the handler")

	h.Handle([]any{"direct"}, Context{Level: InfoLevel})
	require.Len(t, console.logs, 1)
}

// withDefault swaps the package default facade for the duration of a test
func withDefault(t *testing.T, f *Facade) {
	t.Helper()
	prev := Default()
	SetDefault(f)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefault_PackageFunctions(t *testing.T) {
	rec := &recorder{}
	withDefault(t, New())

	SetHandler(rec)
	SetLevel(TraceLevel)
	assert.Equal(t, TraceLevel, GetLevel())
	assert.True(t, EnabledFor(TraceLevel))

	Trace("t")
	Debug("d")
	Info("i")
	Log("l")
	Warn("w")
	Error("e")
	Time("x")
	TimeEnd("x")
	Tracef("%d", 1)
	Debugf("%d", 2)
	Infof("%d", 3)
	Warnf("%d", 4)
	Errorf("%d", 5)
	Get("pkg").Info("named")

	calls := rec.all()
	require.Len(t, calls, 14)
	assert.Equal(t, InfoLevel, calls[3].ctx.Level)
	assert.Equal(t, []any{"x", "end"}, calls[7].messages)
	assert.Equal(t, "pkg", calls[13].ctx.Name)
}

func TestDefault_UseDefaults(t *testing.T) {
	console := &fakeConsole{}
	withDefault(t, New())

	UseDefaults(Options{Console: console})
	Info("ready")

	require.Len(t, console.logs, 1)
	assert.Equal(t, DebugLevel, GetLevel())
}

func TestDefault_SetDefaultIgnoresNil(t *testing.T) {
	f := New()
	withDefault(t, f)

	SetDefault(nil)
	assert.Same(t, f, Default())
}

func TestDefault_GetIsShared(t *testing.T) {
	withDefault(t, New())

	assert.Same(t, Get("shared"), Default().Get("shared"))
}
