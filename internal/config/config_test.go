package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.ImportChunkSize)
	assert.Equal(t, 4, cfg.ImportWorkers)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MEDSTAT_LISTEN_ADDR", ":9999")
	t.Setenv("MEDSTAT_IMPORT_CHUNK_SIZE", "250")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 250, cfg.ImportChunkSize)
}

func TestLoad_RejectsBadChunkSize(t *testing.T) {
	t.Setenv("MEDSTAT_IMPORT_CHUNK_SIZE", "0")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")

	assert.Error(t, err)
}
