package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			app := api.NewApp(cfg, logger)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				_ = app.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info().Str("addr", addr).Int("time_quantum", cfg.RoundRobinTimeQuantum).Msg("listening")
			if err := app.Listen(addr); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 9095, "Listen port (overrides config)")
	return cmd
}
