package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	current = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

func Init() {
	InitWithLevel("info")
}

func InitWithLevel(level string) {
	SetOutput(os.Stdout, level)
}

// SetOutput replaces the process logger. Tests pass io.Discard.
func SetOutput(w io.Writer, level string) {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})

	mu.Lock()
	current = slog.New(h).With(slog.String("app", "mauibank"))
	mu.Unlock()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Debug(msg string, args ...any) {
	L().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	L().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	L().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	L().Error(msg, normalize(args)...)
}

// normalize lets call sites pass a bare error after the message, which
// slog would otherwise render as a !BADKEY attribute.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{slog.Any("error", err)}
		}
	}
	return args
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
