// Package logger holds the process-wide zerolog logger for the SmartAdmin
// API. Initialise it once in main with the LOG_LEVEL read from
// configuration; every emitted event carries the service name so log
// aggregation can tell this API apart from its neighbours.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "smartadmin-api"

// Options controls how the logger is built.
type Options struct {
	// Level is the minimum level emitted: debug, info, warn or error.
	// Empty or unrecognised values mean info.
	Level string
	// Pretty switches to the human-readable console writer. Leave false in
	// production so output stays line-delimited JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	instance zerolog.Logger
	once     sync.Once
	ready    bool
)

// Init builds the singleton logger. Only the first call has any effect;
// later calls return the already-built instance.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		level := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(level)

		instance = zerolog.New(out).
			Level(level).
			With().
			Timestamp().
			Str("service", serviceName).
			Logger()

		ready = true
	})
	return instance
}

// Get returns the singleton. Panics when Init has not run yet, which would
// mean a code path started logging before main finished bootstrapping.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Reset discards the singleton so the next Init rebuilds it. Tests only.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	ready = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
