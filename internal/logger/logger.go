package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color on standard error.
// Red is commonly associated with errors or critical problems to draw immediate attention.
var Error = func(format string, a ...any) {
	color.New(color.FgRed).Fprintf(color.Error, format, a...)
}

// Debug logs verbose messages in cyan color if enabled, otherwise is a no-op.
// This is a function variable that is assigned dynamically during Init based on
// the --verbose flag. When verbose output is disabled, Debug is assigned to an
// empty function that does nothing.
var Debug func(format string, a ...any)

// Init initializes the logger package, specifically enabling or disabling verbose logging.
// Parameters:
// - verbose: boolean flag to turn verbose messages on or off.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores verbose logs.
func Init(verbose bool) {
	if verbose {
		// Assign Debug to print cyan-colored verbose messages.
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		// Assign Debug to a no-op function that ignores all verbose logs to avoid runtime overhead.
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Commands constructed outside Execute (tests mostly) still need a usable Debug.
	Init(false)
}
