package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/bootstrap/dashboard"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/health"
	"github.com/stackpad-dev/stackpad/internal/logging"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Bring the stack up and watch its health",
	Long: `Initialize anything missing, start the stack in dependency order,
then show a live health dashboard until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		warnOldNode(log)

		orch, cfg, err := newOrchestrator(log)
		logging.CheckErr(log, err)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logging.CheckErr(log, orch.Up(ctx))

		client, err := health.NewClient(cfg.HealthURL, log)
		logging.CheckErr(log, err)
		logging.CheckErr(log, dashboard.Run(client, cfg.PollInterval))
	},
}
