package catmux

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-wide structured logger. It defaults to
// writing to stderr at Info level; cmd/catmuxd replaces it via
// SetLogger once it has parsed its own verbosity flag, so library
// consumers embedding this package are never forced into a specific
// logging backend.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "catmux",
})

// SetLogger replaces the package-wide logger. Pass a logger with
// "radio" or "handle" context already attached via With if callers
// want every engine log line scoped to a process-wide identity.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	logger = l
}
