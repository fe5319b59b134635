package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"qcalc/internal/calc"
	"qcalc/internal/config"
	"qcalc/internal/logging"
	"qcalc/internal/mathexpr"
	"qcalc/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "qcalc",
	Short: "qcalc is a terminal scientific calculator",
	Long: `qcalc evaluates arithmetic and scientific expressions in an interactive
terminal keypad, keeps a history of results for the session, and can also
evaluate expressions from the command line, from piped input, or as MCP tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return runLines(os.Stdin, cmd.OutOrStdout(), env.session)
		}
		return tui.Run(env.session, env.logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the YAML config file")
	rootCmd.PersistentFlags().Bool("degrees", false, "Interpret trigonometric arguments in degrees")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
}

// env is the wiring shared by every command.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	session *calc.Controller
	close   func() error
}

// setup loads the config, applies flag overrides and builds a session.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("degrees") {
		deg, _ := flags.GetBool("degrees")
		cfg.AngleMode = calc.Radians.String()
		if deg {
			cfg.AngleMode = calc.Degrees.String()
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger, closeLog, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path, "angle_mode", cfg.AngleMode, "show_extra", cfg.ShowExtra)

	session := calc.NewController(mathexpr.New(),
		calc.WithLogger(logger),
		calc.WithAngleMode(cfg.Mode()),
		calc.WithExtraPanel(cfg.ShowExtra),
	)
	return &env{cfg: cfg, logger: logger, session: session, close: closeLog}, nil
}
