// Package scaffold brings missing components into existence. Each
// component's lifecycle is a two-state flag backed by a single marker
// file, so the scaffolder holds no state of its own and is safe to
// re-run after any partial failure.
//
// Concurrent bootstrap invocations are not locked against each other;
// callers are expected to serialize them.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/stackpad-dev/stackpad/core/stack"
)

type Scaffolder struct {
	root   string
	runner Runner
	log    zerolog.Logger
}

func New(root string, runner Runner, log zerolog.Logger) *Scaffolder {
	return &Scaffolder{
		root:   root,
		runner: runner,
		log:    log,
	}
}

// State derives the component's state from the filesystem. It is
// re-evaluated on every call, never cached.
func (s *Scaffolder) State(desc stack.Descriptor) stack.ComponentState {
	if _, err := os.Stat(filepath.Join(s.root, desc.Marker)); err == nil {
		return stack.Ready
	}
	return stack.Uninitialized
}

// Ensure scaffolds the component if its presence marker is absent. An
// existing marker always short-circuits, even if the rest of the
// component directory is incomplete; completeness of an already-marked
// component is the caller's problem, not re-verified here.
func (s *Scaffolder) Ensure(ctx context.Context, desc stack.Descriptor) error {
	if s.State(desc) == stack.Ready {
		s.log.Debug().Str("component", desc.Name).Msg("component already scaffolded, skipping")
		return nil
	}

	s.log.Info().Str("component", desc.Name).Msg("scaffolding component")
	genDir := filepath.Join(s.root, desc.GeneratorDir)
	if err := os.MkdirAll(genDir, 0755); err != nil {
		return fmt.Errorf("preparing generator directory for %s: %w", desc.Name, err)
	}
	if err := s.runner.Run(ctx, genDir, desc.GeneratorArgv); err != nil {
		return fmt.Errorf("scaffolding %s: %w", desc.Name, err)
	}

	// The generic generator doesn't know about our docker networking,
	// styling, or health UI; these files are hard overrides, not
	// negotiable generator flags.
	for _, override := range desc.Overrides {
		target := filepath.Join(s.root, override.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("applying override %s: %w", override.Path, err)
		}
		if err := os.WriteFile(target, []byte(override.Content), 0644); err != nil {
			return fmt.Errorf("applying override %s: %w", override.Path, err)
		}
		s.log.Debug().Str("path", override.Path).Msg("applied override")
	}

	s.log.Info().Str("component", desc.Name).Msg("component scaffolded")
	return nil
}
