// package shared defines shared helpers
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger returns a [log.Logger] prefixed "plseed" that reports timestamps and callers.
//
// A nil writer logs to [os.Stderr].
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{ReportTimestamp: true, ReportCaller: true, Prefix: "plseed"})
}

// RunLogger tags every entry of a child logger with the journal run ID.
func RunLogger(l *log.Logger, runID string) *log.Logger {
	return l.With("run", runID)
}

// SetVerbose switches l between debug and info level.
func SetVerbose(l *log.Logger, verbose bool) {
	if verbose {
		l.SetLevel(log.DebugLevel)
		return
	}
	l.SetLevel(log.InfoLevel)
}

// GenerateID returns a new v4 UUID, used for run IDs and generated identifiers.
func GenerateID() string {
	return uuid.NewString()
}
