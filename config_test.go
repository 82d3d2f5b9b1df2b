package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusdesk/dashboard"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STATUSDESK_API_URL", "")
	t.Setenv("STATUSDESK_CACHE_PATH", "")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	require.NoError(t, cfg.validate())
	assert.Equal(t, dashboard.CascadeAbort, cfg.cascadeMode())
	assert.Zero(t, cfg.retryPolicy().Attempts)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("STATUSDESK_API_URL", "")
	t.Setenv("STATUSDESK_CACHE_PATH", "")
	path := writeFile(t, "statusdesk.yaml", `
api_url: https://monitor.internal
cache_path: /tmp/sd.db
request_timeout: 5s
cascade: independent
retry:
  attempts: 3
  initial_interval: 250ms
watch_interval: 1m
log_level: debug
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, "https://monitor.internal", cfg.APIURL)
	assert.Equal(t, "/tmp/sd.db", cfg.CachePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, dashboard.CascadeIndependent, cfg.cascadeMode())
	assert.Equal(t, dashboard.RetryPolicy{Attempts: 3, InitialInterval: 250 * time.Millisecond}, cfg.retryPolicy())
	assert.Equal(t, time.Minute, cfg.WatchInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeFile(t, "statusdesk.yaml", "api_url: https://from-file\n")
	t.Setenv("STATUSDESK_API_URL", "https://from-env")
	t.Setenv("STATUSDESK_CACHE_PATH", "/var/lib/sd.db")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env", cfg.APIURL)
	assert.Equal(t, "/var/lib/sd.db", cfg.CachePath)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = loadConfig(writeFile(t, "bad.yaml", "api_url: [unterminated"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cascade = "parallel"
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.APIURL = "  "
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.WatchInterval = -time.Second
	assert.Error(t, cfg.validate())
}

func TestLoadMonitorsFromYAML(t *testing.T) {
	path := writeFile(t, "monitors.yaml", `
monitors:
  - name: Ping API
    url: https://x.test
  - name: Login
    url: https://x.test/login
    method: post
    checkInterval: 30
    failureThreshold: 3
    timeout: 10
    credential: c1
  - name: ""
    url: https://nameless.test
`)

	forms, hashes, err := loadMonitorsFromYAML(path)
	require.NoError(t, err)
	require.Len(t, forms, 2)
	require.Len(t, hashes, 2)

	assert.Equal(t, dashboard.MonitorForm{
		Name: "Ping API", URL: "https://x.test", CheckInterval: 60, FailureThreshold: 1, Timeout: 30,
	}, forms[0])
	assert.Equal(t, "post", forms[1].Method)
	assert.Equal(t, 3, forms[1].FailureThreshold)
	assert.Equal(t, "c1", forms[1].CredentialID)
	assert.NotEqual(t, hashes[0], hashes[1])
	assert.Len(t, hashes[0], 64)
}

func TestCalculateConfigHash(t *testing.T) {
	a := MonitorConfig{Name: "Ping", URL: "https://x.test", Method: "get", CheckInterval: 60}
	b := a
	b.Method = "GET"
	assert.Equal(t, calculateConfigHash(a), calculateConfigHash(b), "method case does not matter")

	b.CheckInterval = 30
	assert.NotEqual(t, calculateConfigHash(a), calculateConfigHash(b))
}
