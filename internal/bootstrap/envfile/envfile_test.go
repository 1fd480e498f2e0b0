package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCreatesFromTemplate(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, ".env.example")
	target := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(template, []byte("# defaults\nDB_PASSWORD=postgres\n"), 0644))

	err := Ensure(zerolog.Nop(), target, template)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "# defaults\nDB_PASSWORD=postgres\n", string(data))
}

func TestEnsurePreservesExistingFile(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, ".env.example")
	target := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(template, []byte("DB_PASSWORD=postgres\n"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("DB_PASSWORD=my-real-password\n"), 0644))

	err := Ensure(zerolog.Nop(), target, template)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "DB_PASSWORD=my-real-password\n", string(data))
}

func TestEnsureIdempotent(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, ".env.example")
	target := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(template, []byte("KEY=value\n"), 0644))

	require.NoError(t, Ensure(zerolog.Nop(), target, template))
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	require.NoError(t, Ensure(zerolog.Nop(), target, template))
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnsureMissingTemplate(t *testing.T) {
	dir := t.TempDir()

	err := Ensure(zerolog.Nop(), filepath.Join(dir, ".env"), filepath.Join(dir, "nope.example"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateMissing)

	_, statErr := os.Stat(filepath.Join(dir, ".env"))
	assert.True(t, os.IsNotExist(statErr))
}
