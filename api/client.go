// Package api is a typed client for the monitoring backend's REST surface.
// Every profile-scoped call sends the profile id as the X-Profile-ID header;
// list calls also put it in the profileId query parameter so the scope
// survives an intermediary that strips either one.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog/log"
)

// ProfileHeader carries the profile scope on every scoped request.
const ProfileHeader = "X-Profile-ID"

// Client talks to the monitoring backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		UserAgent: "statusdesk/1.0",
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type request struct {
	method    string
	path      string
	query     url.Values
	profileID string
	body      easyjson.Marshaler
	out       easyjson.Unmarshaler
}

func (c *Client) do(ctx context.Context, r request) error {
	var reader io.Reader
	if r.body != nil {
		b, err := easyjson.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
		reader = bytes.NewReader(b)
	}

	target := c.BaseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	if r.body != nil || r.method == http.MethodDelete {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.profileID != "" {
		req.Header.Set(ProfileHeader, r.profileID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", r.method).Str("path", r.path).Msg("[API] Request failed")
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	log.Debug().Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("[API] Response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return &ResponseError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	if r.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := easyjson.UnmarshalFromReader(resp.Body, r.out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

func scopedQuery(profileID string) url.Values {
	return url.Values{"profileId": []string{profileID}}
}

// ListProfiles calls GET /api/profiles.
func (c *Client) ListProfiles(ctx context.Context) ([]Profile, error) {
	var out ProfileList
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/profiles", out: &out})
	return out, err
}

// ActivateProfile calls POST /api/profiles/{id}/activate.
func (c *Client) ActivateProfile(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/profiles/" + url.PathEscape(id) + "/activate",
	})
}

// ListMonitors calls GET /api/monitors?profileId=.
func (c *Client) ListMonitors(ctx context.Context, profileID string) ([]Monitor, error) {
	var out MonitorList
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/api/monitors",
		query:     scopedQuery(profileID),
		profileID: profileID,
		out:       &out,
	})
	return out, err
}

// CreateMonitor calls POST /api/monitors.
func (c *Client) CreateMonitor(ctx context.Context, profileID string, m CreateMonitorRequest) (*Monitor, error) {
	var out Monitor
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/api/monitors",
		profileID: profileID,
		body:      m,
		out:       &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMonitor calls DELETE /api/monitors/{id}.
func (c *Client) DeleteMonitor(ctx context.Context, profileID, id string) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      "/api/monitors/" + url.PathEscape(id),
		profileID: profileID,
	})
}

// ResetMonitorFailures calls POST /api/monitors/{id}/reset-failures.
func (c *Client) ResetMonitorFailures(ctx context.Context, profileID, id string) error {
	return c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/api/monitors/" + url.PathEscape(id) + "/reset-failures",
		profileID: profileID,
	})
}

// ListCredentials calls GET /api/credentials?profileId=.
func (c *Client) ListCredentials(ctx context.Context, profileID string) ([]Credential, error) {
	var out CredentialList
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/api/credentials",
		query:     scopedQuery(profileID),
		profileID: profileID,
		out:       &out,
	})
	return out, err
}

// ListNotificationMethods calls GET /api/notifications/methods.
func (c *Client) ListNotificationMethods(ctx context.Context, profileID string) ([]NotificationMethod, error) {
	var out NotificationMethodList
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/api/notifications/methods",
		profileID: profileID,
		out:       &out,
	})
	return out, err
}

// DeleteNotificationMethod calls DELETE /api/notifications/methods/{id}.
func (c *Client) DeleteNotificationMethod(ctx context.Context, profileID, id string) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      "/api/notifications/methods/" + url.PathEscape(id),
		profileID: profileID,
	})
}
