package cmd

import (
	"github.com/spf13/cobra"

	"reqcheck/internal/bootstrap"
	"reqcheck/internal/logger"
	"reqcheck/internal/requirements"
)

var (
	// modulesPath is the requirement list, one module per line.
	modulesPath string
	// wheelhousePath is an optional wheel archive for offline installs.
	wheelhousePath string
)

// ensureCmd is the explicit form of the root command's default action.
var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Install python3, pip and any missing modules",
	Run:   runEnsure,
}

func runEnsure(cmd *cobra.Command, args []string) {
	cfg, ok := loadConfig(cmd)
	if !ok {
		exitCode = bootstrap.ExitFatal
		return
	}
	if cmd.Flags().Changed("modules") {
		cfg.ModulesFile = modulesPath
	}
	if cmd.Flags().Changed("wheelhouse") {
		cfg.Wheelhouse = wheelhousePath
	}

	report := bootstrap.Run(newToolchain(cfg), bootstrap.Options{
		ModulesFile: cfg.ModulesFile,
		Wheelhouse:  cfg.Wheelhouse,
	})
	if len(report.Failed) > 0 {
		logger.Warn("[WARN] %d module(s) failed to install: %v\n", len(report.Failed), report.Failed)
	}
	exitCode = report.ExitCode
}

func init() {
	// The same flags are accepted with or without the `ensure` subcommand.
	for _, c := range []*cobra.Command{rootCmd, ensureCmd} {
		c.Flags().StringVarP(&modulesPath, "modules", "m", requirements.DefaultFile, "Path to the module list")
		c.Flags().StringVarP(&wheelhousePath, "wheelhouse", "w", "", "Archive of wheels to install from offline (.zip, .7z, .tar.*)")
	}
	rootCmd.AddCommand(ensureCmd)
}
