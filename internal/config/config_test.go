// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wavefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Zero(t, cfg.Workers)
	assert.Zero(t, cfg.MaxLevels)
	assert.False(t, cfg.Undirected)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FullFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
workers: 8
max_levels: 12
undirected: true
format: csv
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 12, cfg.MaxLevels)
	assert.True(t, cfg.Undirected)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "workers: 4\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "workers: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "negative workers", body: "workers: -1\n", want: "workers"},
		{name: "negative max_levels", body: "max_levels: -5\n", want: "max_levels"},
		{name: "unknown format", body: "format: xml\n", want: "format"},
		{name: "unknown log level", body: "log_level: loud\n", want: "log_level"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tc.body)
			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadValue)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidate_Direct(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Format = "csv"
	cfg.LogLevel = "warn"
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "WARN"
	assert.ErrorIs(t, cfg.Validate(), ErrBadValue)
}
