package main

import (
	"os"

	"reqcheck/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() and exits with the code it returns.
//
// reqcheck prepares a host to run a Python application:
//   - Checks for python3 and installs it with the native package manager
//     (winget on Windows, Homebrew on macOS, apt on Linux) when missing
//   - Checks for pip and bootstraps it with ensurepip when missing
//   - Reads modules_required.dat and pip-installs every module that cannot be imported
//
// Error handling strategy:
//   - A missing interpreter, pip, or module list that cannot be fixed ends the run with exit code 1
//   - A module that fails to install is reported and the run continues,
//     so as many modules as possible are installed in one pass
//
// Nothing is cached between runs; the module list is re-read every time.
func main() {
	os.Exit(cmd.Execute())
}
