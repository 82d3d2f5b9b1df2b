package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusdesk/api"
	"statusdesk/apitest"
)

func TestClient_ScopedRequests(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddProfile(api.Profile{ID: "p1", Name: "Production", IsActive: true})
	srv.AddMonitor("p1", api.Monitor{ID: "m1", Name: "Ping", URL: "https://x.test", Status: "up"})
	srv.AddCredential("p1", api.Credential{ID: "c1", Name: "token", Type: "api_key"})
	srv.AddMethod("p1", api.NotificationMethod{ID: "n1", Name: "mail", Type: "email"})

	c := api.New(srv.URL + "/")
	ctx := context.Background()

	monitors, err := c.ListMonitors(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, monitors, 1)
	assert.Equal(t, api.StatusUp, monitors[0].State())

	creds, err := c.ListCredentials(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, api.CredentialAPI, creds[0].Kind())

	methods, err := c.ListNotificationMethods(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, methods, 1)

	reqs := srv.Requests()
	require.Len(t, reqs, 3)
	for _, r := range reqs[:2] {
		assert.Equal(t, "p1", r.HeaderID, r.Path)
		assert.Equal(t, "p1", r.QueryID, r.Path)
	}
	assert.Equal(t, "p1", reqs[2].HeaderID)
	assert.Empty(t, reqs[2].QueryID)
}

func TestClient_ListProfiles(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddProfile(api.Profile{ID: "p1", Name: "Production"})
	srv.AddProfile(api.Profile{ID: "p2", Name: "Staging", IsActive: true})

	profiles, err := api.New(srv.URL).ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	active, ok := api.ProfileList(profiles).Active()
	require.True(t, ok)
	assert.Equal(t, "p2", active.ID)
	assert.Empty(t, srv.Requests()[0].HeaderID)
}

func TestClient_ResponseError(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddProfile(api.Profile{ID: "p1"})
	srv.Fail("POST /api/monitors", http.StatusBadRequest, "URL is invalid")

	_, err := api.New(srv.URL).CreateMonitor(context.Background(), "p1", api.CreateMonitorRequest{Name: "a", URL: "b"})
	var re *api.ResponseError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusBadRequest, re.StatusCode)
	assert.Equal(t, "URL is invalid", re.Message())
	assert.False(t, re.Temporary())
	assert.Equal(t, "URL is invalid", api.ErrorMessage(err, "fallback"))
}

func TestClient_CreateMonitorSendsNullCredential(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"m1","name":"a","credential_id":null}`))
	}))
	t.Cleanup(srv.Close)

	m, err := api.New(srv.URL).CreateMonitor(context.Background(), "p1", api.CreateMonitorRequest{Name: "a", URL: "b", Method: "GET"})
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
	assert.Empty(t, m.CredentialID)
	assert.Contains(t, body, `"credential_id":null`)
}

type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls++
	return http.DefaultTransport.RoundTrip(r)
}

func TestClient_CustomHTTPClientAndUserAgent(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.UserAgent()
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	transport := &countingTransport{}
	client := api.New(srv.URL,
		api.WithHTTPClient(&http.Client{Transport: transport}),
		api.WithUserAgent("statusdesk-test/2.0"),
	)
	profiles, err := client.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, "statusdesk-test/2.0", agent)

	_, err = api.New(srv.URL).ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "statusdesk/1.0", agent)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	_, err := api.New(srv.URL, api.WithTimeout(20*time.Millisecond)).ListProfiles(context.Background())
	require.Error(t, err)
	var re *api.ResponseError
	assert.False(t, errors.As(err, &re))
}

func TestResponseError_Temporary(t *testing.T) {
	assert.True(t, (&api.ResponseError{StatusCode: 503}).Temporary())
	assert.True(t, (&api.ResponseError{StatusCode: 429}).Temporary())
	assert.False(t, (&api.ResponseError{StatusCode: 404}).Temporary())
	assert.Equal(t, "api 500: Internal Server Error", (&api.ResponseError{StatusCode: 500, Body: "  "}).Error())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "fallback", api.ErrorMessage(&api.ResponseError{StatusCode: 500}, "fallback"))
	assert.Equal(t, "dial failed", api.ErrorMessage(errors.New("dial failed"), "fallback"))
	assert.Equal(t, "fallback", api.ErrorMessage(nil, "fallback"))
}
