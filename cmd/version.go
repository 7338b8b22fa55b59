package cmd

import (
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"reqcheck/internal/bootstrap"
	"reqcheck/internal/logger"
	"reqcheck/internal/python"
)

// minPython is the semver constraint the interpreter must satisfy.
var minPython string

// checkVersionCmd fails when the interpreter is missing or older than required.
var checkVersionCmd = &cobra.Command{
	Use:   "check-version",
	Short: "Check that the Python interpreter satisfies a version constraint",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ok := loadConfig(cmd)
		if !ok {
			exitCode = bootstrap.ExitFatal
			return
		}
		if cmd.Flags().Changed("min") {
			cfg.MinPython = minPython
		}
		exitCode = checkVersion(newToolchain(cfg), cfg.MinPython)
	},
}

// checkVersion compares the interpreter's version against constraint and returns an exit code.
func checkVersion(tc *python.Toolchain, constraint string) int {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		logger.Error("Invalid version constraint %q: %v\n", constraint, err)
		return bootstrap.ExitFatal
	}

	v, err := tc.Version()
	if err != nil {
		logger.Error("Unable to determine %s version: %v\n", tc.Python, err)
		return bootstrap.ExitFatal
	}

	if ok, errs := c.Validate(v); !ok {
		for _, e := range errs {
			logger.Debug("[DEBUG] %v\n", e)
		}
		logger.Error("❌ Python %s does not satisfy %s\n", v, constraint)
		return bootstrap.ExitFatal
	}

	logger.Info("✅ Python %s satisfies %s\n", v, constraint)
	return bootstrap.ExitReady
}

func init() {
	checkVersionCmd.Flags().StringVar(&minPython, "min", "", "Version constraint, e.g. \">= 3.10\" (default from config, else \">= 3.8\")")
	rootCmd.AddCommand(checkVersionCmd)
}
