package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/logging"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the environment file and scaffold missing components",
	Long: `Create the environment file from its template if absent and scaffold
any component whose presence marker is missing. Already-initialized
components are left untouched, so init is safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		warnOldNode(log)

		orch, _, err := newOrchestrator(log)
		logging.CheckErr(log, err)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logging.CheckErr(log, orch.Init(ctx))
		log.Info().Msg("project initialized")
	},
}
