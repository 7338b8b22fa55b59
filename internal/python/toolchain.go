// Package python checks for and installs the Python interpreter, pip, and modules.
package python

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"reqcheck/internal/logger"
	"reqcheck/internal/platform"
	"reqcheck/internal/runner"
)

// DefaultInterpreter is the interpreter command used when none is configured.
const DefaultInterpreter = "python3"

// importProbe imports the module named by argv[1] so the name never becomes part of the code string.
const importProbe = "import importlib, sys; importlib.import_module(sys.argv[1])"

// Toolchain bundles the interpreter command, the host platform and the runner used to invoke both.
type Toolchain struct {
	Python   string
	Platform platform.Platform
	Runner   runner.Runner
}

// New returns a Toolchain, falling back to DefaultInterpreter when python is empty.
func New(python string, p platform.Platform, r runner.Runner) *Toolchain {
	if python == "" {
		python = DefaultInterpreter
	}
	return &Toolchain{Python: python, Platform: p, Runner: r}
}

func (tc *Toolchain) cmd(args ...string) runner.Command {
	return runner.Cmd(tc.Python, args...)
}

// InterpreterPresent reports whether `python3 --version` succeeds.
func (tc *Toolchain) InterpreterPresent() bool {
	return tc.Runner.Run(tc.cmd("--version"))
}

// PipPresent reports whether `python3 -m pip --version` succeeds.
func (tc *Toolchain) PipPresent() bool {
	return tc.Runner.Run(tc.cmd("-m", "pip", "--version"))
}

// InstallCommands returns the native commands that install Python on p.
// The second result is false when p has no installer.
func InstallCommands(p platform.Platform) ([]runner.Command, bool) {
	switch p {
	case platform.Windows:
		return []runner.Command{
			runner.Cmd("winget", "install", "-e", "--id", "Python.Python.3"),
		}, true
	case platform.MacOS:
		return []runner.Command{
			runner.Cmd("brew", "install", "python3"),
		}, true
	case platform.Linux:
		return []runner.Command{
			runner.Cmd("sudo", "apt", "update"),
			runner.Cmd("sudo", "apt", "install", "-y", "python3", "python3-pip"),
		}, true
	default:
		return nil, false
	}
}

// InstallInterpreter installs Python with the platform's package manager.
// An unsupported platform fails without a message.
func (tc *Toolchain) InstallInterpreter() bool {
	cmds, ok := InstallCommands(tc.Platform)
	if !ok {
		return false
	}
	logger.Debug("[DEBUG] Installing interpreter on %s with %d command(s)\n", tc.Platform, len(cmds))
	return runner.RunAll(tc.Runner, cmds)
}

// EnsurePip runs the interpreter's ensurepip bootstrap.
func (tc *Toolchain) EnsurePip() bool {
	return tc.Runner.Run(tc.cmd("-m", "ensurepip"))
}

// ModulePresent reports whether name can be imported.
func (tc *Toolchain) ModulePresent(name string) bool {
	return tc.Runner.Run(tc.ProbeCommand(name))
}

// ProbeCommand is the import check run for name.
func (tc *Toolchain) ProbeCommand(name string) runner.Command {
	return tc.cmd("-c", importProbe, name)
}

// InstallModule installs name with pip, treating the module name as the package name.
func (tc *Toolchain) InstallModule(name string) bool {
	return tc.Runner.Run(tc.InstallCommand(name, ""))
}

// InstallModuleFrom installs name from a local wheel directory without contacting an index.
func (tc *Toolchain) InstallModuleFrom(findLinks, name string) bool {
	return tc.Runner.Run(tc.InstallCommand(name, findLinks))
}

// InstallCommand is the pip command run for name. A non-empty findLinks
// switches pip to offline mode against that directory.
func (tc *Toolchain) InstallCommand(name, findLinks string) runner.Command {
	if findLinks != "" {
		return tc.cmd("-m", "pip", "install", "--no-index", "--find-links", findLinks, name)
	}
	return tc.cmd("-m", "pip", "install", name)
}

// Version queries the interpreter and parses its `Python X.Y.Z` banner.
func (tc *Toolchain) Version() (*semver.Version, error) {
	out, err := tc.Runner.Output(tc.cmd("--version"))
	if err != nil {
		return nil, fmt.Errorf("%s --version failed: %w", tc.Python, err)
	}
	return ParseVersion(out)
}

// ParseVersion parses output such as "Python 3.11.4".
func ParseVersion(banner string) (*semver.Version, error) {
	fields := strings.Fields(banner)
	if len(fields) != 2 || fields[0] != "Python" {
		return nil, fmt.Errorf("invalid version string: %q", banner)
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil, fmt.Errorf("error parsing version %q: %w", fields[1], err)
	}
	return v, nil
}
