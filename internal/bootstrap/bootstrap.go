// Package bootstrap sequences the environment check: interpreter, pip, then
// every module from the requirement list.
//
// Failures of the interpreter, pip, or the module list are fatal (exit code 1).
// A module that fails to install is reported and the run continues; it does not
// change the exit code.
package bootstrap

import (
	"os"

	"reqcheck/internal/logger"
	"reqcheck/internal/python"
	"reqcheck/internal/requirements"
	"reqcheck/internal/wheelhouse"
)

// Exit codes returned by Run.
const (
	ExitReady = 0
	ExitFatal = 1
)

// Options controls a single run.
type Options struct {
	// ModulesFile is the requirement list; defaults to modules_required.dat.
	ModulesFile string
	// Wheelhouse is an optional wheel archive. When set, missing modules are
	// installed from it with pip's --no-index.
	Wheelhouse string
}

// Report summarizes what a run did.
type Report struct {
	Checked   []string // modules probed, in file order
	Installed []string // modules pip installed successfully
	Failed    []string // modules pip could not install
	ExitCode  int
}

// Run performs the full check-and-install sequence and returns its report.
func Run(tc *python.Toolchain, opts Options) Report {
	var report Report

	logger.Info("🛠️  Checking Python environment...\n")

	if !tc.InterpreterPresent() {
		logger.Warn("❌ %s not found. Installing...\n", tc.Python)
		if !tc.InstallInterpreter() {
			logger.Error("Python installation failed.\n")
			report.ExitCode = ExitFatal
			return report
		}
	} else {
		logger.Info("✅ %s found.\n", tc.Python)
	}

	if !tc.PipPresent() {
		logger.Warn("❌ pip not found. Trying to install it...\n")
		if !tc.EnsurePip() {
			logger.Error("pip installation failed.\n")
			report.ExitCode = ExitFatal
			return report
		}
	} else {
		logger.Info("✅ pip found.\n")
	}

	modulesFile := opts.ModulesFile
	if modulesFile == "" {
		modulesFile = requirements.DefaultFile
	}
	modules, err := requirements.Load(modulesFile)
	if err != nil {
		logger.Error("Error opening %s: %v\n", modulesFile, err)
		report.ExitCode = ExitFatal
		return report
	}
	logger.Debug("[DEBUG] Loaded %d module(s) from %s\n", len(modules), modulesFile)

	findLinks := ""
	if opts.Wheelhouse != "" {
		dir, err := os.MkdirTemp("", "reqcheck-wheels-")
		if err != nil {
			logger.Error("Error creating wheelhouse directory: %v\n", err)
			report.ExitCode = ExitFatal
			return report
		}
		defer os.RemoveAll(dir)

		findLinks, err = wheelhouse.Extract(opts.Wheelhouse, dir)
		if err != nil {
			logger.Error("Error unpacking wheelhouse %s: %v\n", opts.Wheelhouse, err)
			report.ExitCode = ExitFatal
			return report
		}
		logger.Debug("[DEBUG] Installing from wheelhouse %s\n", findLinks)
	}

	for _, name := range modules {
		report.Checked = append(report.Checked, name)
		installed, ok := Ensure(tc, name, findLinks)
		switch {
		case !ok:
			report.Failed = append(report.Failed, name)
		case installed:
			report.Installed = append(report.Installed, name)
		}
	}

	logger.Info("✅ Environment ready. Start the Python app.\n")
	report.ExitCode = ExitReady
	return report
}

// Ensure checks that name is importable and installs it with pip if not.
// installed reports whether pip ran and succeeded; ok is false only when the
// install failed. An empty findLinks installs from the package index.
func Ensure(tc *python.Toolchain, name, findLinks string) (installed bool, ok bool) {
	logger.Info("🔄 Checking module: %s\n", name)

	if tc.ModulePresent(name) {
		logger.Info("✅ %s already present.\n", name)
		return false, true
	}

	logger.Warn("📦 Missing module: %s. Installing...\n", name)
	if findLinks != "" {
		ok = tc.InstallModuleFrom(findLinks, name)
	} else {
		ok = tc.InstallModule(name)
	}
	if !ok {
		logger.Error("Error during pip install %s\n", name)
		return false, false
	}
	return true, true
}
