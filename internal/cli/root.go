package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	logger zerolog.Logger
	cfg    *config.SchedulerConfig
)

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Simulate classic single-CPU scheduling disciplines",
		Long:  "cpusched computes waiting, turnaround and completion times plus the execution timeline for FCFS, SJF, Priority and Round Robin scheduling.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			logger = logging.NewLoggerWithWriter(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml when present)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error); overrides config")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format (console, json); overrides config")

	root.AddCommand(
		newRunCmd(),
		newServeCmd(),
		newAlgorithmsCmd(),
	)

	return root
}
