package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestHelpersNoopWithNilLogger(t *testing.T) {
	Debug(nil, "x")
	Info(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", errors.New("boom"))
	if ForGame(nil, 1) != nil {
		t.Fatal("expected nil logger to stay nil")
	}
}

func TestErrorAppendsErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	Error(bufferLogger(&buf), "failed", errors.New("boom"), FieldTeam, "TOR")
	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "team=TOR") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestForGameAddsGameID(t *testing.T) {
	var buf bytes.Buffer
	ForGame(bufferLogger(&buf), 2024020001).Info("tick")
	if !strings.Contains(buf.String(), "game_id=2024020001") {
		t.Fatalf("expected game id attr, got %q", buf.String())
	}
}
