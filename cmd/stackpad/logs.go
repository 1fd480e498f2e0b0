package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs [service]",
	Short: "Stream service logs",
	Long: `Stream logs for one service, or for every service when no service
(or "all") is given. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		orch, _, err := newOrchestrator(log)
		logging.CheckErr(log, err)

		target := ""
		if len(args) == 1 {
			target = args[0]
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		// Interruption is the normal way out of a log stream.
		if err := orch.Logs(ctx, target); err != nil && ctx.Err() == nil {
			logging.CheckErr(log, err)
		}
	},
}
