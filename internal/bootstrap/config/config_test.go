package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(root), cfg.ProjectName)
	assert.Equal(t, DefaultHealthURL, cfg.HealthURL)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, DefaultReadyTimeout, cfg.ReadyTimeout)
	assert.Equal(t, filepath.Join(root, DefaultComposeFile), cfg.ComposeFilePath())
	assert.Equal(t, filepath.Join(root, DefaultEnvFile), cfg.EnvFilePath())
	assert.Equal(t, filepath.Join(root, DefaultEnvTemplate), cfg.EnvTemplatePath())
}

func TestLoadProjectFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "stackpad.yml"), []byte(
		"project_name: myapp\npoll_interval: 2s\nhealth_url: http://localhost:9999/health\n",
	), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "myapp", cfg.ProjectName)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, "http://localhost:9999/health", cfg.HealthURL)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultComposeFile, cfg.ComposeFile)
}

func TestLoadEnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("STACKPAD_HEALTH_URL", "http://localhost:4000/health")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/health", cfg.HealthURL)
}

func TestLoadMalformedProjectFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "stackpad.yml"), []byte("{nope"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}
