package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackpad-dev/stackpad/core/stack"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/config"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/health"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/scaffold"
)

// TestDevEndToEnd walks the whole dev flow against fakes: fresh
// directory in, running stack plus an all-green first health report
// out.
func TestDevEndToEnd(t *testing.T) {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(
			`{"status":"healthy","timestamp":"2025-01-01T00:00:00Z","services":{"database":"healthy","redis":"healthy"}}`))
	}))
	defer endpoint.Close()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, config.DefaultEnvTemplate),
		[]byte("POSTGRES_PASSWORD=postgres\n"),
		0644,
	))
	t.Setenv("STACKPAD_HEALTH_URL", endpoint.URL)

	cfg, err := config.Load(root)
	require.NoError(t, err)

	rt := &fakeRuntime{}
	gen := &generatorStub{root: root}
	orch := New(cfg, scaffold.New(root, gen, zerolog.Nop()), rt, zerolog.Nop())

	require.NoError(t, orch.Up(context.Background()))

	// Environment file, both components, tier-ordered startup.
	_, err = os.Stat(filepath.Join(root, config.DefaultEnvFile))
	require.NoError(t, err)
	for _, desc := range scaffold.Descriptors() {
		_, err = os.Stat(filepath.Join(root, desc.Marker))
		require.NoError(t, err, "marker for %s", desc.Name)
	}
	assert.Equal(t, []string{"start:postgres,redis", "start:api,frontend"}, rt.starts())

	// First poll comes back all green.
	client, err := health.NewClient(cfg.HealthURL, zerolog.Nop())
	require.NoError(t, err)
	report := client.Fetch(context.Background())
	assert.Equal(t, stack.StatusHealthy, report.Status)
	assert.Equal(t, map[string]string{"database": "healthy", "redis": "healthy"}, report.Services)
}
