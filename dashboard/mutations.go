package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"statusdesk/api"
)

// ErrValidation means a required form field was empty; nothing was sent.
var ErrValidation = errors.New("missing required fields")

// ErrDeclined means the user did not confirm an irreversible action.
var ErrDeclined = errors.New("action not confirmed")

// MonitorForm is the submitted monitor creation form.
type MonitorForm struct {
	Name             string
	URL              string
	Method           string
	CheckInterval    int
	FailureThreshold int
	Timeout          int
	CredentialID     string
}

// Request builds the create payload. Text fields are trimmed, an empty
// method becomes GET and an empty credential is sent as null.
func (f MonitorForm) Request() api.CreateMonitorRequest {
	req := api.CreateMonitorRequest{
		Name:             strings.TrimSpace(f.Name),
		URL:              strings.TrimSpace(f.URL),
		Method:           strings.ToUpper(strings.TrimSpace(f.Method)),
		CheckInterval:    f.CheckInterval,
		FailureThreshold: f.FailureThreshold,
		Timeout:          f.Timeout,
		IsActive:         true,
	}
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	if id := strings.TrimSpace(f.CredentialID); id != "" {
		req.CredentialID = &id
	}
	return req
}

// CreateMonitor validates the form, creates the monitor in the active
// profile, resets the form and refreshes the monitor view.
func (c *Coordinator) CreateMonitor(ctx context.Context, form MonitorForm) (*api.Monitor, error) {
	req := form.Request()
	if req.Name == "" || req.URL == "" {
		log.Warn().Str("name", req.Name).Str("url", req.URL).Msg("[Mutation] Monitor form incomplete")
		c.notifier.Notify("Please fill in all required fields", SeverityError)
		return nil, ErrValidation
	}

	profileID, err := c.ResolveProfile()
	if err != nil {
		return nil, err
	}

	log.Info().Str("profile_id", profileID).Str("name", req.Name).Str("url", req.URL).Str("method", req.Method).
		Int("check_interval", req.CheckInterval).Int("failure_threshold", req.FailureThreshold).
		Int("timeout", req.Timeout).Msg("[Mutation] Creating monitor")

	monitor, err := c.backend.CreateMonitor(ctx, profileID, req)
	if err != nil {
		log.Error().Err(err).Str("profile_id", profileID).Msg("[Mutation] Error creating monitor")
		c.notifier.Notify(api.ErrorMessage(err, "Failed to create monitor"), SeverityError)
		return nil, err
	}

	log.Info().Str("monitor_id", monitor.ID).Msg("[Mutation] Monitor created")
	c.notifier.Notify("Monitor created successfully", SeveritySuccess)
	c.sink.ResetMonitorForm()
	_ = c.RefreshMonitors(ctx)
	return monitor, nil
}

// DeleteMonitor removes a monitor after confirmation.
func (c *Coordinator) DeleteMonitor(ctx context.Context, id string) error {
	return c.mutate(ctx, mutation{
		name:    "delete monitor",
		id:      id,
		prompt:  "Are you sure you want to delete this monitor?",
		call:    c.backend.DeleteMonitor,
		success: "Monitor deleted successfully",
		failure: "Failed to delete monitor",
		refresh: c.RefreshMonitors,
	})
}

// DeleteMethod removes a notification method after confirmation.
func (c *Coordinator) DeleteMethod(ctx context.Context, id string) error {
	return c.mutate(ctx, mutation{
		name:    "delete notification method",
		id:      id,
		prompt:  "Are you sure you want to delete this notification method?",
		call:    c.backend.DeleteNotificationMethod,
		success: "Notification method deleted successfully",
		failure: "Failed to delete notification method",
		refresh: c.RefreshMethods,
	})
}

// ResetFailures zeroes a monitor's consecutive failure count.
func (c *Coordinator) ResetFailures(ctx context.Context, id string) error {
	return c.mutate(ctx, mutation{
		name:    "reset failures",
		id:      id,
		call:    c.backend.ResetMonitorFailures,
		success: "Failure count reset",
		failure: "Failed to reset failure count",
		refresh: c.RefreshMonitors,
	})
}

type mutation struct {
	name    string
	id      string
	prompt  string // empty means no confirmation needed
	call    func(ctx context.Context, profileID, id string) error
	success string
	failure string
	refresh func(context.Context) error
}

func (c *Coordinator) mutate(ctx context.Context, m mutation) error {
	if m.prompt != "" {
		ok, err := c.confirm.Confirm(ctx, m.prompt)
		if err != nil {
			log.Warn().Err(err).Str("op", m.name).Msg("[Mutation] Confirmation failed, treating as declined")
		}
		if err != nil || !ok {
			log.Info().Str("op", m.name).Str("id", m.id).Msg("[Mutation] Not confirmed")
			return ErrDeclined
		}
	}

	profileID, err := c.ResolveProfile()
	if err != nil {
		return err
	}

	if err := m.call(ctx, profileID, m.id); err != nil {
		log.Error().Err(err).Str("op", m.name).Str("id", m.id).Str("profile_id", profileID).Msg("[Mutation] Failed")
		c.notifier.Notify(m.failure, SeverityError)
		return err
	}

	log.Info().Str("op", m.name).Str("id", m.id).Msg("[Mutation] Done")
	c.notifier.Notify(m.success, SeveritySuccess)
	_ = m.refresh(ctx)
	return nil
}

// ActivateProfile switches the backend's active profile and reruns the
// profile load so the cache is overwritten with the server-confirmed id.
func (c *Coordinator) ActivateProfile(ctx context.Context, id string) (Outcome, error) {
	if err := c.backend.ActivateProfile(ctx, id); err != nil {
		log.Error().Err(err).Str("profile_id", id).Msg("[Sync] Failed to activate profile")
		c.notifier.Notify("Failed to activate profile", SeverityError)
		return OutcomeProfilesFailed, err
	}
	log.Info().Str("profile_id", id).Msg("[Sync] Profile activated")
	return c.LoadProfiles(ctx), nil
}
