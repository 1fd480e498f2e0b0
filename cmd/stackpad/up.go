package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/logging"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring the stack up without the dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		warnOldNode(log)

		orch, _, err := newOrchestrator(log)
		logging.CheckErr(log, err)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logging.CheckErr(log, orch.Up(ctx))
	},
}
