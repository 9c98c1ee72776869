package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	inTempDir(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gwt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir = "build/tests"

[browser]
driver = "firefox"
wait_timeout = 20

[llm]
model = "llama3.2"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/tests", cfg.OutputDir)
	assert.Equal(t, "outputs/generated_scenarios.txt", cfg.ScenariosFile)
	assert.Equal(t, "firefox", cfg.Browser.Driver)
	assert.Equal(t, 20, cfg.Browser.WaitTimeout)
	assert.Equal(t, 5, cfg.Browser.AlertTimeout)
	assert.Equal(t, "invalid", cfg.Browser.ErrorMarker)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile(DefaultPath, []byte("output_dir = \"here\"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "here", cfg.OutputDir)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gwt.toml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir = \n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Browser.Driver = "netscape"
	cfg.Browser.WaitTimeout = 0
	cfg.Browser.ErrorMarker = " "
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `browser.driver "netscape"`)
	assert.Contains(t, err.Error(), "browser.wait_timeout must be positive")
	assert.Contains(t, err.Error(), "browser.error_marker must not be empty")
	assert.Contains(t, err.Error(), `log.format "xml"`)
}

func TestComposer(t *testing.T) {
	cfg := Default()
	cfg.Browser.Driver = "edge"
	cfg.Browser.WaitTimeout = 15

	c := cfg.Composer()
	assert.Equal(t, "edge", c.Driver)
	assert.Equal(t, 15, c.Emitter.WaitTimeout)
	assert.Equal(t, "invalid", c.Emitter.ErrorMarker)
}

func TestWrite_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	assert.Contains(t, buf.String(), `output_dir = "outputs/selenium_tests"`)

	path := filepath.Join(t.TempDir(), "gwt.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
