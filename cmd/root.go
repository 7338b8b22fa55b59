package cmd

import (
	"github.com/spf13/cobra"

	"reqcheck/internal/bootstrap"
	"reqcheck/internal/config"
	"reqcheck/internal/logger"
	"reqcheck/internal/platform"
	"reqcheck/internal/python"
	"reqcheck/internal/runner"
)

var (
	// debug enables debug logging, including the output of every command run.
	debug bool
	// configPath points at the optional YAML config.
	configPath string
	// pythonCmd overrides the interpreter command.
	pythonCmd string

	// exitCode is set by the command that ran and returned from Execute.
	exitCode int
)

// rootCmd checks the Python environment when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "reqcheck",
	Short: "Ensure Python, pip and required modules are installed",
	Long: `reqcheck verifies that python3, pip and every module listed in
modules_required.dat are available, installing whatever is missing.

Exit status is 0 when the environment is ready (individual module install
failures are reported but do not change it) and 1 when the interpreter,
pip or the module list could not be set up.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun initializes the logger before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	Run: runEnsure,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&pythonCmd, "python", "", "Python interpreter command (default python3)")
}

// Execute runs the selected command and returns the process exit code.
func Execute() int {
	exitCode = 0
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v\n", err)
		return bootstrap.ExitFatal
	}
	return exitCode
}

// loadConfig reads the config file and applies flags the user set explicitly.
// The default config path may be absent; an explicit one must exist.
func loadConfig(cmd *cobra.Command) (config.Config, bool) {
	optional := !cmd.Flags().Changed("config")
	cfg, err := config.Load(configPath, optional)
	if err != nil {
		logger.Error("%v\n", err)
		return cfg, false
	}
	if cmd.Flags().Changed("python") {
		cfg.Python = pythonCmd
	}
	logger.Debug("[DEBUG] Configuration: %+v\n", cfg)
	return cfg, true
}

// newToolchain builds the toolchain for the running host.
func newToolchain(cfg config.Config) *python.Toolchain {
	p := platform.Detect()
	logger.Debug("[DEBUG] Detected platform: %s\n", p)
	return python.New(cfg.Python, p, runner.Exec{})
}
