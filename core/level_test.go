package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{TimeLevel, "TIME"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{OffLevel, "OFF"},
		{DefineLevel(42, ""), "LEVEL(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Order(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Value >= levels[i].Value {
			t.Errorf("%s (%d) not below %s (%d)", levels[i-1], levels[i-1].Value, levels[i], levels[i].Value)
		}
	}
}

func TestLevel_EqualIgnoresName(t *testing.T) {
	alias := DefineLevel(WarnLevel.Value, "warning")
	if !alias.Equal(WarnLevel) {
		t.Error("levels with equal values must be equal")
	}
	if alias.Equal(ErrorLevel) {
		t.Error("levels with different values must not be equal")
	}
}

func TestLevel_AtLeastMonotonic(t *testing.T) {
	levels := Levels()
	for _, threshold := range levels {
		for i, l1 := range levels {
			if !l1.AtLeast(threshold) {
				continue
			}
			for _, l2 := range levels[i:] {
				if !l2.AtLeast(threshold) {
					t.Errorf("threshold %s: %s enabled but %s not", threshold, l1, l2)
				}
			}
		}
	}
}

func TestLevel_IsValid(t *testing.T) {
	if (Level{}).IsValid() {
		t.Error("zero level must be invalid")
	}
	for _, l := range Levels() {
		if !l.IsValid() {
			t.Errorf("%s must be valid", l)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", TraceLevel, true},
		{"DEBUG", DebugLevel, true},
		{" Info ", InfoLevel, true},
		{"time", TimeLevel, true},
		{"warning", WarnLevel, true},
		{"err", ErrorLevel, true},
		{"none", OffLevel, true},
		{"verbose", Level{}, false},
		{"", Level{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestContext_WithLevel(t *testing.T) {
	ctx := Context{Level: WarnLevel, Name: "svc"}
	got := ctx.WithLevel(ErrorLevel)

	if got.Level != ErrorLevel || got.Name != "svc" {
		t.Errorf("WithLevel() = %+v", got)
	}
	if ctx.Level != WarnLevel {
		t.Error("WithLevel() modified the receiver")
	}
}
