package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/logging"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop all services",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		orch, _, err := newOrchestrator(log)
		logging.CheckErr(log, err)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logging.CheckErr(log, orch.Down(ctx))
	},
}
