package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestInit_EmitsServiceField(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if entry["service"] != "smartadmin-api" {
		t.Fatalf("expected service field, got %+v", entry)
	}
	if entry["message"] != "hello" {
		t.Fatalf("unexpected message: %+v", entry)
	}
}

func TestInit_LevelFiltersOutput(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	if bytes.Contains(buf.Bytes(), []byte("dropped")) {
		t.Fatalf("info event emitted below the configured level: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Fatalf("warn event missing: %s", buf.String())
	}
}

func TestInit_SecondCallKeepsFirstConfig(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	log := Init(Options{Level: "error", Output: &second})
	log.Info().Msg("routed")

	if second.Len() != 0 {
		t.Fatalf("second Init must not rebuild the logger: %s", second.String())
	}
	if !bytes.Contains(first.Bytes(), []byte("routed")) {
		t.Fatalf("event missing from the first writer: %s", first.String())
	}
}

func TestParseLevel_Defaults(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"WARN":    "warn",
		"warning": "warn",
		"error":   "error",
		"":        "info",
		"bogus":   "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from Get before Init")
		}
	}()
	Get()
}
