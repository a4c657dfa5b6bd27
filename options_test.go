package aimsmodel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer

	m := NewMapStore[string, item](WithLogger(newDebugLogger(&buf)))
	m.Add([]item{{Key: "a"}}, false)

	out := buf.String()
	for _, want := range []string{
		"model data changed",
		"event=" + EventDataChanged,
		"store=map",
		"size=1",
		"listeners=0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q\nGot: %s", want, out)
		}
	}
}

func TestWithLogger_NoLogWhenSuppressed(t *testing.T) {
	var buf bytes.Buffer

	s := NewSequenceStore[string](WithLogger(newDebugLogger(&buf)))
	s.SetData([]string{})

	if buf.Len() != 0 {
		t.Errorf("suppressed SetData() logged output: %s", buf.String())
	}
}

func TestWithLogger_Nil(t *testing.T) {
	// nil falls back to slog.Default()
	s := NewSequenceStore[string](WithLogger(nil))
	s.SetData([]string{"a"})

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestWithName(t *testing.T) {
	var buf bytes.Buffer

	s := NewSequenceStore[string](
		WithLogger(newDebugLogger(&buf)),
		WithName("recent-searches"),
	)
	s.SetData([]string{"a"})

	out := buf.String()
	if !strings.Contains(out, "model=recent-searches") {
		t.Errorf("log output missing model name\nGot: %s", out)
	}
	if !strings.Contains(out, "store=sequence") {
		t.Errorf("log output missing store kind\nGot: %s", out)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	m := NewMapStore[string, item](nil)
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}
