package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sansstate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: \"1.0\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "ISIS", cfg.Facility)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, OutputText, cfg.Output.Format)
	assert.Equal(t, "state.db", filepath.Base(cfg.Store.Path))
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce.Std())
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SANSSTATE_TEST_DIR", dir)

	cfg, err := Load(writeConfig(t, `
version: "1.0"
store:
  path: ${SANSSTATE_TEST_DIR}/snapshots.db
metrics:
  enabled: true
logging:
  level: DEBUG
  format: json
watch:
  debounce: 2s
`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "snapshots.db"), cfg.Store.Path)
	assert.Equal(t, "sansstate.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce.Std())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, `
version: "1.0"
facility: ILL
logging:
  level: loud
output:
  format: xml
defaults:
  period: -2
`))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	for _, field := range []string{"facility:", "logging.level:", "output.format:", "defaults.period:"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	_, err := Load(writeConfig(t, "version: \"2.0\"\n"))
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestInitWritesLoadableExample(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "sansstate.yaml")

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ISIS", cfg.Facility)
	assert.Equal(t, "./user.yaml", cfg.Defaults.UserFile)

	err = Init(path, false)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	require.NoError(t, Init(path, true))
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, ValidateConfig(Default()))
}

func TestSlogLevel(t *testing.T) {
	lvl, err := NormalizeLogLevel("Warning")
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, lvl)
	assert.Equal(t, "WARN", lvl.SlogLevel().String())
}
