// Package cli implements the gymdiag command-line interface.
//
// This package provides commands for generating the Pentagon Gymnastics
// diagrams, listing the catalog and summarising an output directory. The
// CLI is built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render catalog diagrams or diagram files to PNG, PDF and more
//   - list: Show the diagram catalog
//   - summary: Group the files in an output directory by diagram type
//   - pick: Choose diagrams interactively, then generate them
//
// Running gymdiag without a command is the same as "gymdiag generate".
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the [CLI] struct and is handed to the pipeline runner.
//
// # Example
//
//	import "github.com/pentagongym/gymdiag/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the tracker was created, rounded to
// the millisecond.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg at debug level along with the elapsed time since progress
// was created. Example output: "run 1f0c2a9e finished (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, p.elapsed())
}
