package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_JSONWithServiceAndComponent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf, Service: "mealplanner"})

	l := Component("wizard")
	l.Debug().Str("wizard_id", "w-1").Msg("saved")

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("expected one JSON event, got %q: %v", buf.String(), err)
	}
	if ev["service"] != "mealplanner" || ev["component"] != "wizard" || ev["wizard_id"] != "w-1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev["level"] != "debug" {
		t.Fatalf("unexpected level: %v", ev["level"])
	}
}

func TestInit_OnlyFirstCallCounts(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "error", Output: &first})
	Init(Options{Level: "debug", Output: &second})

	l := Get()
	l.Info().Msg("filtered")
	if first.Len() != 0 || second.Len() != 0 {
		t.Fatalf("info must be filtered at error level")
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
