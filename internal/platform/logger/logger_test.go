package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_JSONIncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "dogs-catalog", Out: &buf})

	l.With(Fields{"component": "dogs"}).Info("listed", Fields{"count": 3})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["app"] != "dogs-catalog" || entry["component"] != "dogs" {
		t.Fatalf("missing base fields: %v", entry)
	}
	if entry["msg"] != "listed" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["count"] != float64(3) {
		t.Fatalf("expected count=3, got %v", entry["count"])
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Out: &buf})

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	l.Warn("shown", Err(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info/debug filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "err=boom") {
		t.Fatalf("expected warn line with err, got %q", out)
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Out: &buf})
	_ = parent.With(Fields{"child": true})

	parent.Info("parent", nil)
	if strings.Contains(buf.String(), "child") {
		t.Fatalf("parent logger picked up child fields: %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "": Info, "WARNING": Warn, "error": Error, "???": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("x") != FormatText {
		t.Fatalf("unexpected ParseFormat result")
	}
}
