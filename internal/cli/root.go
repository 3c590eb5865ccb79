package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/all-dot-files/tick/internal/config"
	"github.com/all-dot-files/tick/internal/shell"
	"github.com/all-dot-files/tick/internal/stopwatch"
	"github.com/all-dot-files/tick/pkg/errors"
	"github.com/all-dot-files/tick/pkg/logger"
)

// Version is the tick release version.
const Version = "0.1.0"

var (
	cfgFile       string
	configManager *config.Manager
	debugMode     bool

	nameFlag  string
	precFlag  int
	colorFlag string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tick",
	Short: "tick - interactive terminal stopwatch",
	Long: `tick is a shell-like terminal stopwatch. It reads single-character
commands from standard input, keeps one named elapsed-time counter, and
prints a status message after each command.

Durations are entered either as a number with a unit ("1.5m", "90 s") or in
stopwatch form ("1:30:00.25"). Stopwatch fields fill right to left, so ":5"
is five seconds and ":5:" is five minutes.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tick/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug mode with detailed error messages")

	rootCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "stopwatch name shown in the prompt")
	rootCmd.Flags().IntVarP(&precFlag, "precision", "p", 2, "subsecond digits shown when displaying times (0-9)")
	rootCmd.Flags().StringVar(&colorFlag, "color", "", "color output: auto, always or never")
}

// initConfig reads in config file
func initConfig() {
	var err error
	configManager, err = config.NewManager(cfgFile)
	if err != nil {
		PrintError(fmt.Errorf("error initializing config: %w", err))
		os.Exit(1)
	}

	if err := configManager.Load(); err != nil {
		PrintError(errors.Wrap(err, errors.ErrConfig, "config.load", "could not load configuration").
			WithSuggestion(fmt.Sprintf("fix or remove %s", configManager.GetConfigPath())))
		os.Exit(1)
	}

	if debugMode {
		configManager.Get().Debug = true
	}
}

// IsDebug returns true if debug mode is enabled
func IsDebug() bool {
	if debugMode {
		return true
	}
	if configManager != nil {
		return configManager.Get().Debug
	}
	return false
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := configManager.Get()

	if cmd.Flags().Changed("name") {
		cfg.Name = nameFlag
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precFlag
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "cli.flags", "invalid option")
	}

	level := cfg.LogLevel
	if IsDebug() {
		level = "debug"
	}
	logger.Setup(cfg.LogFormat, level)

	// fatih/color already disables itself on non-TTY stdout; the config can
	// force it either way
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	logger.Debug("starting shell", "interactive", interactive, "precision", cfg.Precision)

	sh := shell.New(shell.Options{
		Input:       os.Stdin,
		Output:      os.Stdout,
		Clock:       stopwatch.SystemClock{},
		Name:        cfg.Name,
		Precision:   cfg.Precision,
		Interactive: interactive,
		Version:     Version,
	})
	if err := sh.Run(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "shell.run", "stopwatch session failed")
	}
	return nil
}
