// Package logger provides structured logging using zerolog. Log lines go to
// stderr so they never interleave with the interactive prompts on stdout.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const gameIDKey contextKey = "game_id"

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init initializes the global logger from LOG_LEVEL, LOG_FILE and DEV.
func Init() {
	InitWithWriter(os.Stderr)
}

// InitWithWriter is Init with an explicit console destination.
func InitWithWriter(w io.Writer) {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 30
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: milliTimeFormat,
		NoColor:    !isDevelopmentMode(),
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		f, ferr := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output).With().Timestamp().Caller().Logger()

	log.Debug().
		Str("level", level.String()).
		Bool("dev", isDevelopmentMode()).
		Msg("Logger initialized")
}

// ParseLevel maps a LOG_LEVEL value to a zerolog level. Empty or unknown
// values mean info.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func isDevelopmentMode() bool {
	return os.Getenv("DEV") == "true" ||
		os.Getenv("DEV_MODE") == "true" ||
		os.Getenv("DEVELOPMENT") == "true"
}

// NewGameID returns a short random identifier for one game.
func NewGameID() string {
	return uuid.NewString()[:8]
}

// WithGameID returns a new context with the given game ID stored.
func WithGameID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, gameIDKey, id)
}

// GameIDFromContext extracts the game ID from context, or empty string.
func GameIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(gameIDKey).(string)
	return id
}

// ForGame returns a logger enriched with the game ID from context.
func ForGame(ctx context.Context) zerolog.Logger {
	id := GameIDFromContext(ctx)
	if id == "" {
		return log.Logger
	}
	return log.Logger.With().Str("gameId", id).Logger()
}
