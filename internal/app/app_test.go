package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/bookfinder/internal/prefs"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSetup_WiresConfigAndPrefs(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "bookfinder.log")
	cfgPath := writeConfig(t, dir, `
search_url = "http://127.0.0.1:9/search.json"
covers_url = "http://covers.local"
log_file = "`+filepath.ToSlash(logFile)+`"
log_level = "debug"
metrics_addr = "127.0.0.1:0"
`)
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate"}))

	c, err := setup(Options{ConfigPath: cfgPath, PrefsPath: prefsPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.logger.Sync() })

	assert.Equal(t, "http://127.0.0.1:9/search.json", c.cfg.SearchURL)
	assert.Equal(t, "debug", c.cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:0", c.cfg.MetricsAddr)
	assert.Equal(t, "Slate", c.theme)
	assert.Equal(t, "http://covers.local/b/id/7-M.jpg", c.covers.URL("7", "M"))
	require.NotNil(t, c.workflow)

	c.logger.Info("probe")
	_ = c.logger.Sync()
	_, err = os.Stat(logFile)
	assert.NoError(t, err, "log file should be created")
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `
log_file = "`+filepath.ToSlash(filepath.Join(dir, "b.log"))+`"
log_level = "info"
metrics_addr = ":9100"
`)

	c, err := setup(Options{
		ConfigPath:  cfgPath,
		PrefsPath:   filepath.Join(dir, "prefs.toml"),
		LogLevel:    " WARN ",
		MetricsAddr: "127.0.0.1:9200",
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", c.cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9200", c.cfg.MetricsAddr)
	assert.Equal(t, "Nightfox", c.theme)
}

func TestSetup_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := setup(Options{ConfigPath: writeConfig(t, dir, "search_url = [")})
	assert.ErrorContains(t, err, "load config")

	_, err = setup(Options{
		ConfigPath: writeConfig(t, dir, `log_file = "`+filepath.ToSlash(filepath.Join(dir, "c.log"))+`"`),
		LogLevel:   "chatty",
	})
	assert.ErrorContains(t, err, "init logging")
}
