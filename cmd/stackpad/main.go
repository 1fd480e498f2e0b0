package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/internal/bootstrap/compose"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/config"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/orchestrator"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/scaffold"
	"github.com/stackpad-dev/stackpad/internal/logging"
)

const version = "v0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stackpad",
	Short: "stackpad - bring a local multi-service dev stack to life",
	Long: `stackpad bootstraps a local development environment: it scaffolds
missing subprojects, materializes the environment file, and starts the
service stack in dependency order.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stackpad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

// newLogger builds the CLI logger honoring the global verbose flag.
func newLogger() zerolog.Logger {
	return logging.NewLogger(verbose)
}

// newOrchestrator wires the orchestrator for the current directory.
func newOrchestrator(log zerolog.Logger) (*orchestrator.Orchestrator, *config.Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, err
	}
	runtime, err := compose.NewRuntime(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	scaffolder := scaffold.New(root, scaffold.ExecRunner{}, log)
	return orchestrator.New(cfg, scaffolder, runtime, log), cfg, nil
}

// warnOldNode surfaces a bad node install before a generator trips over
// it. Warning only; the generator's own exit code stays authoritative.
func warnOldNode(log zerolog.Logger) {
	node := scaffold.NewNodeAdapter()
	nodeVersion, ok, err := node.CheckVersion()
	if err != nil {
		log.Warn().Msg("node not found; scaffolding will fail if components are missing")
		log.Info().Msg(node.GetInstallInstructions())
		return
	}
	if !ok {
		log.Warn().Str("version", nodeVersion).Msg("node is older than v18; generators may fail")
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(devCmd)
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(servicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
