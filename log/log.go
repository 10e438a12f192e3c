package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu    sync.Mutex
	diagLog  zerolog.Logger
	out      io.Writer = os.Stderr
	logReady bool
)

// SetOutput redirects diagnostics away from stderr. Call before Init.
func SetOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	out = w
}

func Init() {
	logMu.Lock()
	defer logMu.Unlock()

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Logger()
	logReady = true
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// Icon records one generated icon file.
func Icon(name string, size int, active bool, bytes int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("file", name).
		Int("size", size).
		Bool("active", active).
		Int("bytes", bytes).
		Msg("icon")
}
