package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewGameID(t *testing.T) {
	a, b := NewGameID(), NewGameID()
	if len(a) != 8 {
		t.Errorf("len(NewGameID()) = %d, want 8", len(a))
	}
	if a == b {
		t.Errorf("two game IDs collided: %s", a)
	}
}

func TestGameIDContext(t *testing.T) {
	ctx := context.Background()
	if id := GameIDFromContext(ctx); id != "" {
		t.Errorf("empty context game ID = %q, want empty", id)
	}
	ctx = WithGameID(ctx, "abc12345")
	if id := GameIDFromContext(ctx); id != "abc12345" {
		t.Errorf("GameIDFromContext = %q, want abc12345", id)
	}
}

func TestForGame_AddsField(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "")
	var buf bytes.Buffer
	InitWithWriter(&buf)

	l := ForGame(WithGameID(context.Background(), "g1"))
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), "g1") {
		t.Errorf("log output %q does not mention the game ID", buf.String())
	}
}
