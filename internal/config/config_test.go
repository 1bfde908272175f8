package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, "puzshelf.db?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", cfg.DSN())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\ndb_path: /data/p.db\nenv: production\n"), 0o644))

	cfg, err := Load(path, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/data/p.db", cfg.DBPath)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, int64(1024*1024), cfg.MaxUploadBytes)

	cfg, err = Load(path, envOf(map[string]string{"PORT": "7000", "MAX_UPLOAD_BYTES": "2048"}))
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), envOf(nil))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))
	_, err = Load(path, envOf(nil))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load("", envOf(map[string]string{"MAX_UPLOAD_BYTES": "lots"}))
	assert.ErrorContains(t, err, "MAX_UPLOAD_BYTES")

	_, err = Load("", envOf(map[string]string{"MAX_UPLOAD_BYTES": "-1"}))
	assert.ErrorContains(t, err, "max_upload_bytes")
}
