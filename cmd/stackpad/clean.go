package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/logging"
)

var cleanForce bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Stop all services and delete their volumes",
	Long: `Stop every service and discard persistent volumes, including the
database. This is irreversible, so it asks for confirmation first.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		if !cleanForce && !confirmClean(os.Stdin, os.Stdout) {
			log.Info().Msg("aborted, nothing was removed")
			return
		}

		orch, _, err := newOrchestrator(log)
		logging.CheckErr(log, err)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logging.CheckErr(log, orch.Clean(ctx))
		log.Info().Msg("stack removed")
	},
}

// confirmClean prompts for an explicit "y". Anything else, including a
// closed stdin, aborts with no side effects.
func confirmClean(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "This deletes all service volumes, including the database. Continue? [y/N] ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "Skip the confirmation prompt")
}
