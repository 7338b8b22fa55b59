package logger

import (
	"github.com/fatih/color" // Colored console output
)

// Printers for each log level. Info and Warn go to stdout, Error goes to stderr.
// They resolve color.Output / color.Error at call time so callers (and tests)
// can redirect the streams.

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Info logs progress messages in green on stdout.
func Info(format string, a ...any) {
	_, _ = infoColor.Fprintf(color.Output, format, a...)
}

// Warn logs warnings in bright magenta on stdout.
func Warn(format string, a ...any) {
	_, _ = warnColor.Fprintf(color.Output, format, a...)
}

// Error logs failures in red on stderr.
func Error(format string, a ...any) {
	_, _ = errorColor.Fprintf(color.Error, format, a...)
}

// Debug logs debug messages in cyan if enabled, otherwise is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When disabled, Debug silently ignores its arguments.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			_, _ = debugColor.Fprintf(color.Output, format, a...)
		}
	} else {
		Debug = func(format string, a ...any) {}
	}
}
