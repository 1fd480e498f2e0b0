// Package compose drives the service stack through the docker compose
// CLI. Container lifecycle stays entirely with the compose engine; this
// package only issues commands and asks the engine API whether a given
// service is up yet.
package compose

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/rs/zerolog"

	"github.com/stackpad-dev/stackpad/internal/bootstrap/config"
)

// readyPollInterval is how often WaitReady re-queries the engine.
const readyPollInterval = time.Second

// healthyState is the engine's health status for a passing healthcheck.
const healthyState = "healthy"

// engineAPI is the slice of the docker engine client the readiness
// query needs. Satisfied by *client.Client; faked in tests.
type engineAPI interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
}

type Runtime struct {
	composeFile string
	project     string
	cli         engineAPI
	log         zerolog.Logger
}

func NewRuntime(cfg *config.Config, log zerolog.Logger) (*Runtime, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &Runtime{
		composeFile: cfg.ComposeFilePath(),
		project:     cfg.ProjectName,
		cli:         dockerClient,
		log:         log,
	}, nil
}

// composeArgs prefixes a subcommand with the file and project flags
// every compose invocation carries.
func composeArgs(composeFile, project string, args ...string) []string {
	return append([]string{"compose", "-f", composeFile, "-p", project}, args...)
}

// run invokes docker compose with the given subcommand arguments,
// passing output through for the developer. Success is signaled solely
// by the exit code.
func (r *Runtime) run(ctx context.Context, args ...string) error {
	full := composeArgs(r.composeFile, r.project, args...)
	r.log.Debug().Strs("args", full).Msg("running docker compose")

	cmd := exec.CommandContext(ctx, "docker", full...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose %s: %w", args[0], err)
	}
	return nil
}

// Start brings the named services up detached. The compose engine owns
// image pulls, network creation, and container recreation decisions.
func (r *Runtime) Start(ctx context.Context, services []string) error {
	args := append([]string{"up", "-d"}, services...)
	return r.run(ctx, args...)
}

// Stop stops every service without removing containers or volumes.
// Stopping an already-stopped stack is a no-op success.
func (r *Runtime) Stop(ctx context.Context) error {
	return r.run(ctx, "stop")
}

// Down removes containers and networks; with removeVolumes it also
// discards persistent volumes. Irreversible once run.
func (r *Runtime) Down(ctx context.Context, removeVolumes bool) error {
	args := []string{"down"}
	if removeVolumes {
		args = append(args, "-v")
	}
	return r.run(ctx, args...)
}

// Logs streams output for one service, or for the whole stack when
// service is empty. It returns only on external interruption.
func (r *Runtime) Logs(ctx context.Context, service string) error {
	args := []string{"logs", "-f", "--tail", "100"}
	if service != "" {
		args = append(args, service)
	}
	return r.run(ctx, args...)
}

// WaitReady blocks until the service's container reports ready, or ctx
// expires. Readiness is the engine's own verdict: a container with a
// healthcheck must report healthy, one without must be running.
func (r *Runtime) WaitReady(ctx context.Context, service string) error {
	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	for {
		ready, err := r.serviceReady(ctx, service)
		if err != nil {
			r.log.Debug().Err(err).Str("service", service).Msg("readiness query failed")
		}
		if ready {
			r.log.Info().Str("service", service).Msg("service ready")
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("service %s never became ready: %w", service, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Runtime) serviceReady(ctx context.Context, service string) (bool, error) {
	containers, err := r.cli.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(
			filters.Arg("label", "com.docker.compose.project="+r.project),
			filters.Arg("label", "com.docker.compose.service="+service),
		),
	})
	if err != nil {
		return false, err
	}
	if len(containers) == 0 {
		return false, nil
	}

	info, err := r.cli.ContainerInspect(ctx, containers[0].ID)
	if err != nil {
		return false, err
	}
	if info.State == nil || !info.State.Running {
		return false, nil
	}
	if info.State.Health != nil {
		return info.State.Health.Status == healthyState, nil
	}
	return true, nil
}
