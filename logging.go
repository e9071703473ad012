package timelinedb

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger receives diagnostics for the one documented fatal path only:
// Allocate's allocation failure, logged just before it panics. Every other
// fallible function, including the compute and accessor functions, never
// logs; it returns an error and leaves the decision of what to do with it
// to the caller. Defaults to discarding
// everything, so importing this package never produces unsolicited output.
var logger = log.NewWithOptions(io.Discard, log.Options{})

// SetLogger installs l as the destination for the library's failure-path
// diagnostics. Passing nil restores the default discard logger. Intended
// to be called once at startup by a consuming application, such as the
// demo commands under cmd/.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
		return
	}
	logger = l
}
