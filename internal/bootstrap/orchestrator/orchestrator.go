// Package orchestrator sequences the bootstrap: environment file, then
// component scaffolding, then tier-ordered service startup. It runs
// strictly sequentially within an invocation and re-derives all state
// from the filesystem, so it is safe to re-run after partial failure.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/stackpad-dev/stackpad/core/stack"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/config"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/envfile"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/scaffold"
)

// ErrInfraNotReady means the infra tier failed to come up; the app tier
// was never started. The stopped-short stack is left in place for
// inspection via logs.
var ErrInfraNotReady = errors.New("infrastructure tier failed to become ready")

// Runtime is the service-control surface the orchestrator drives.
// Implemented by compose.Runtime; faked in tests.
type Runtime interface {
	Start(ctx context.Context, services []string) error
	Stop(ctx context.Context) error
	Down(ctx context.Context, removeVolumes bool) error
	Logs(ctx context.Context, service string) error
	WaitReady(ctx context.Context, service string) error
}

type Orchestrator struct {
	cfg         *config.Config
	scaffolder  *scaffold.Scaffolder
	runtime     Runtime
	descriptors []stack.Descriptor
	log         zerolog.Logger
}

func New(cfg *config.Config, scaffolder *scaffold.Scaffolder, runtime Runtime, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		scaffolder:  scaffolder,
		runtime:     runtime,
		descriptors: scaffold.Descriptors(),
		// Every invocation gets its own run ID so interleaved log
		// output from repeated runs can be told apart.
		log: log.With().Str("run_id", uuid.NewString()).Logger(),
	}
}

// Init materializes the environment file and scaffolds any component
// whose presence marker is absent. Idempotent.
func (o *Orchestrator) Init(ctx context.Context) error {
	if err := envfile.Ensure(o.log, o.cfg.EnvFilePath(), o.cfg.EnvTemplatePath()); err != nil {
		return err
	}
	for _, desc := range o.descriptors {
		if err := o.scaffolder.Ensure(ctx, desc); err != nil {
			return err
		}
	}
	return nil
}

// Up runs Init, then starts the infra tier and blocks until every infra
// service is ready, then starts the app tier. If infra never becomes
// ready the app tier is not attempted.
func (o *Orchestrator) Up(ctx context.Context) error {
	if err := o.Init(ctx); err != nil {
		return err
	}

	o.log.Info().Strs("services", stack.InfraServices).Msg("starting infra tier")
	if err := o.runtime.Start(ctx, stack.InfraServices); err != nil {
		return err
	}
	if err := o.waitInfraReady(ctx); err != nil {
		return err
	}

	o.log.Info().Strs("services", stack.AppServices).Msg("starting app tier")
	if err := o.runtime.Start(ctx, stack.AppServices); err != nil {
		return err
	}

	o.log.Info().Msg("stack is up")
	return nil
}

// waitInfraReady waits on every infra service in parallel. Parallelism
// within a tier is fine; the tier boundary is the only ordering
// guarantee.
func (o *Orchestrator) waitInfraReady(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, o.cfg.ReadyTimeout)
	defer cancel()

	eg, egCtx := errgroup.WithContext(waitCtx)
	for _, svc := range stack.InfraServices {
		svc := svc
		eg.Go(func() error {
			return o.runtime.WaitReady(egCtx, svc)
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("%w: %v", ErrInfraNotReady, err)
	}
	return nil
}

// Down stops all services across both tiers. Safe to call when nothing
// is running.
func (o *Orchestrator) Down(ctx context.Context) error {
	o.log.Info().Strs("services", stack.AllServices()).Msg("stopping all services")
	return o.runtime.Stop(ctx)
}

// Logs streams output for one service, or for everything when target is
// empty or the wildcard "all".
func (o *Orchestrator) Logs(ctx context.Context, target string) error {
	if target == "all" {
		target = ""
	}
	return o.runtime.Logs(ctx, target)
}

// Clean stops all services and discards persistent volumes. Interactive
// confirmation is the CLI's job; by the time Clean is called the
// decision has been made.
func (o *Orchestrator) Clean(ctx context.Context) error {
	o.log.Info().Strs("services", stack.AllServices()).Msg("removing services and volumes")
	return o.runtime.Down(ctx, true)
}

// States reports the derived state of every component, in descriptor
// order.
func (o *Orchestrator) States() map[string]stack.ComponentState {
	states := make(map[string]stack.ComponentState, len(o.descriptors))
	for _, desc := range o.descriptors {
		states[desc.Name] = o.scaffolder.State(desc)
	}
	return states
}
