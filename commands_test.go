package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusdesk/api"
	"statusdesk/apitest"
	"statusdesk/dashboard"
)

type testApp struct {
	*app
	srv    *apitest.Server
	out    *syncBuffer
	errOut *syncBuffer
}

func newTestApp(t *testing.T, selected string, confirm dashboard.Confirmer) *testApp {
	t.Helper()
	srv := apitest.NewServer(t)
	srv.AddProfile(api.Profile{ID: "p1", Name: "Production", IsActive: true})
	srv.AddProfile(api.Profile{ID: "p2", Name: "Staging"})
	srv.AddMonitor("p1", api.Monitor{ID: "m1", Name: "Ping API", URL: "https://x.test", Status: "up"})
	srv.AddCredential("p1", api.Credential{ID: "c1", Name: "API token", Type: "bearer"})
	return newTestAppWith(t, srv, selected, confirm)
}

func newTestAppWith(t *testing.T, srv *apitest.Server, selected string, confirm dashboard.Confirmer) *testApp {
	t.Helper()
	cfg := defaultConfig()
	cfg.APIURL = srv.URL
	cfg.CachePath = filepath.Join(t.TempDir(), "cache.db")

	ta := &testApp{srv: srv, out: &syncBuffer{}, errOut: &syncBuffer{}}
	a, err := newApp(cfg, ta.out, ta.errOut, selected, confirm)
	require.NoError(t, err)
	ta.app = a
	return ta
}

func TestSyncAll(t *testing.T) {
	ta := newTestApp(t, "", dashboard.AlwaysConfirm)
	ta.srv.AddMethod("p1", api.NotificationMethod{ID: "n1", Name: "Ops channel", Type: "slack", Status: "unauthorized"})

	outcome := syncAll(context.Background(), ta.coord)
	require.NoError(t, ta.Close())

	assert.Equal(t, dashboard.OutcomeLoaded, outcome)
	assert.Equal(t, 1, ta.srv.Count(http.MethodGet, "/api/profiles"))
	assert.Equal(t, 1, ta.srv.Count(http.MethodGet, "/api/monitors"))
	assert.Equal(t, 1, ta.srv.Count(http.MethodGet, "/api/credentials"))
	assert.Equal(t, 1, ta.srv.Count(http.MethodGet, "/api/notifications/methods"))

	out := ta.out.String()
	assert.Contains(t, out, "Active profile:")
	assert.Contains(t, out, "Ping API")
	assert.Contains(t, out, "API token")
	assert.Contains(t, ta.errOut.String(), `Notification method "Ops channel" is unauthorized.`)
}

func TestSyncAll_PersistsAcrossRuns(t *testing.T) {
	ta := newTestApp(t, "", dashboard.AlwaysConfirm)
	require.Equal(t, dashboard.OutcomeLoaded, syncAll(context.Background(), ta.coord))
	require.NoError(t, ta.Close())

	// The next invocation opens the same file
	cache, err := openSessionCache(ta.cfg.CachePath)
	require.NoError(t, err)
	defer cache.Close()
	v, err := cache.Get(dashboard.ProfileKey)
	require.NoError(t, err)
	assert.Equal(t, "p1", v)
}

func TestSyncAll_NoActiveProfile(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddProfile(api.Profile{ID: "p1", Name: "Production"})
	ta := newTestAppWith(t, srv, "", dashboard.AlwaysConfirm)

	outcome := syncAll(context.Background(), ta.coord)
	require.NoError(t, ta.Close())

	assert.Equal(t, dashboard.OutcomeNoActiveProfile, outcome)
	assert.Zero(t, ta.srv.Count(http.MethodGet, "/api/monitors"))
	assert.Zero(t, ta.srv.Count(http.MethodGet, "/api/notifications/methods"))
	assert.Contains(t, ta.errOut.String(), "Please create or activate a profile")
	assert.Contains(t, ta.out.String(), "Loading monitors...")
}

func TestApplyMonitors(t *testing.T) {
	ta := newTestApp(t, "p1", dashboard.AlwaysConfirm)
	defer ta.Close()

	forms := []dashboard.MonitorForm{
		{Name: "Ping API", URL: "https://x.test"},
		{Name: "Login", URL: "https://x.test/login", Method: "post"},
		{Name: "Login", URL: "https://x.test/login", Method: "post"},
		{Name: "Health", URL: "https://x.test/health"},
	}
	hashes := make([]string, len(forms))
	for i, f := range forms {
		hashes[i] = calculateConfigHash(MonitorConfig{Name: f.Name, URL: f.URL, Method: f.Method})
	}

	res, err := applyMonitors(context.Background(), ta.coord, ta.client, forms, hashes)
	require.NoError(t, err)
	assert.Equal(t, applyResult{Created: 2, Skipped: 2}, res)

	stored := ta.srv.Monitors("p1")
	require.Len(t, stored, 3)
	assert.Equal(t, "POST", stored[1].Method)
	assert.Equal(t, 2, ta.srv.Count(http.MethodPost, "/api/monitors"))
}

func TestApplyMonitors_FailuresCounted(t *testing.T) {
	ta := newTestApp(t, "p1", dashboard.AlwaysConfirm)
	defer ta.Close()
	ta.srv.Fail("POST /api/monitors", http.StatusBadRequest, "URL is invalid")

	forms := []dashboard.MonitorForm{{Name: "Bad", URL: "nope"}}
	res, err := applyMonitors(context.Background(), ta.coord, ta.client, forms, []string{strings.Repeat("a", 64)})
	require.NoError(t, err)
	assert.Equal(t, applyResult{Failed: 1}, res)
}

func TestApplyMonitors_NoProfile(t *testing.T) {
	ta := newTestApp(t, "", dashboard.AlwaysConfirm)
	defer ta.Close()

	_, err := applyMonitors(context.Background(), ta.coord, ta.client, nil, nil)
	require.ErrorIs(t, err, dashboard.ErrNoActiveProfile)
	assert.Empty(t, ta.srv.Requests())
}

func TestDeclinedIsFine(t *testing.T) {
	var out syncBuffer
	assert.NoError(t, declinedIsFine(&out, dashboard.ErrDeclined))
	assert.Contains(t, out.String(), "Cancelled.")
	assert.ErrorIs(t, declinedIsFine(&out, dashboard.ErrNoActiveProfile), dashboard.ErrNoActiveProfile)
}

func TestHuhConfirmer_AssumeYes(t *testing.T) {
	ok, err := huhConfirmer{assumeYes: true}.Confirm(context.Background(), "Are you sure you want to delete this monitor?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetupApp_SkipsBuiltinCommands(t *testing.T) {
	t.Chdir(t.TempDir())
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultCompletionCmd()

	for _, args := range [][]string{{"help"}, {"completion", "bash"}} {
		cmd, _, err := rootCmd.Find(args)
		require.NoError(t, err)
		require.True(t, builtinCommand(cmd), args)
		require.NoError(t, setupApp(cmd, nil))
	}
	assert.Nil(t, current)
	_, err := os.Stat(defaultConfig().CachePath)
	assert.True(t, os.IsNotExist(err), "no cache file is created")

	complete := &cobra.Command{Use: cobra.ShellCompRequestCmd}
	assert.True(t, builtinCommand(complete))
	assert.False(t, builtinCommand(syncCmd))
	assert.False(t, builtinCommand(monitorCreateCmd))
}
