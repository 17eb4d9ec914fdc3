// Package logx is the ambient structured-logging setup shared by
// cmd/server and cmd/derive, wrapping github.com/rs/zerolog the way
// the teacher's cmd/server wrapped the standard "log" package: one
// process-wide logger, configured once at startup.
package logx

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w (or a colorized console writer over
// os.Stderr when pretty is true, for interactive CLI use).
func New(w io.Writer, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Default is the package-wide logger used by call sites that don't
// thread a logger through explicitly. Replace it once at process
// startup with Configure.
var Default = New(os.Stderr, true)

// Configure replaces Default, e.g. after parsing cmd/server's -pretty-log flag.
func Configure(l zerolog.Logger) { Default = l }
