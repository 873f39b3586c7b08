package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/meetup-client/internal/config"
)

// secretKeys are attribute keys whose values never reach the log.
var secretKeys = map[string]struct{}{
	"token":         {},
	"authorization": {},
	"session_token": {},
}

const redacted = "[redacted]"

// NewLogger builds the client logger and installs it as the slog default.
// Records go to stderr, leaving stdout to the chat, inbox and participant
// renderers. Every record carries the client version, and bearer tokens are
// redacted wherever they are logged.
//
// cfg.Format "json" selects the JSON handler, anything else the text handler
// with source locations. cfg.Level accepts debug, info, warn (or warning) and
// error; anything else means info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	asJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !asJSON,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("client", UserAgent()))
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if _, ok := secretKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
