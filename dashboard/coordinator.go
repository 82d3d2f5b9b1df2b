// Package dashboard coordinates profile-scoped resources for a monitoring
// dashboard. It resolves the active profile, keeps the persistent session
// cache in line with what the backend reports, cascades the monitor,
// credential and notification-method loads into a render sink, and reports
// every outcome through a Notifier. Nothing here knows how records are drawn.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"statusdesk/api"
)

// CascadeMode decides what happens to the credential load when the monitor
// load fails during a profile load.
type CascadeMode string

const (
	// CascadeAbort stops at the first failing loader.
	CascadeAbort CascadeMode = "abort"
	// CascadeIndependent attempts every loader regardless.
	CascadeIndependent CascadeMode = "independent"
)

// ParseCascadeMode accepts "abort" or "independent"; empty means abort.
func ParseCascadeMode(s string) (CascadeMode, error) {
	switch CascadeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", CascadeAbort:
		return CascadeAbort, nil
	case CascadeIndependent:
		return CascadeIndependent, nil
	default:
		return "", fmt.Errorf("unknown cascade mode %q", s)
	}
}

// Outcome summarises one profile load.
type Outcome int

const (
	// OutcomeLoaded: profile resolved and every dependent load succeeded.
	OutcomeLoaded Outcome = iota
	// OutcomeNoActiveProfile: the backend reported no active profile.
	OutcomeNoActiveProfile
	// OutcomeProfilesFailed: the profile list could not be fetched.
	OutcomeProfilesFailed
	// OutcomeCascadeFailed: profile resolved and persisted, a dependent load failed.
	OutcomeCascadeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeNoActiveProfile:
		return "no-active-profile"
	case OutcomeProfilesFailed:
		return "profiles-failed"
	case OutcomeCascadeFailed:
		return "cascade-failed"
	default:
		return "unknown"
	}
}

const (
	msgActivateProfile = "Please create or activate a profile"
	msgProfilesFailed  = "Failed to load profiles"
	msgCascadeFailed   = "Failed to load monitors or credentials"
)

// Coordinator owns the session state and drives every flow.
type Coordinator struct {
	backend  Backend
	session  *Session
	sink     Sink
	notifier Notifier
	confirm  Confirmer
	alert    func(api.NotificationMethod)
	cascade  CascadeMode
	retry    RetryPolicy
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithConfirmer sets the guard used before deletes. Without one every
// delete is declined.
func WithConfirmer(c Confirmer) Option {
	return func(co *Coordinator) { co.confirm = c }
}

// WithUnauthorizedAlert sets the hook raised for unauthorized methods.
func WithUnauthorizedAlert(fn func(api.NotificationMethod)) Option {
	return func(co *Coordinator) { co.alert = fn }
}

// WithCascadeMode sets the cascade behaviour of LoadProfiles.
func WithCascadeMode(m CascadeMode) Option {
	return func(co *Coordinator) { co.cascade = m }
}

// WithRetry enables retrying loader fetches.
func WithRetry(p RetryPolicy) Option {
	return func(co *Coordinator) { co.retry = p }
}

// New creates a coordinator.
func New(backend Backend, session *Session, sink Sink, notifier Notifier, opts ...Option) *Coordinator {
	c := &Coordinator{
		backend:  backend,
		session:  session,
		sink:     sink,
		notifier: notifier,
		confirm: ConfirmFunc(func(context.Context, string) (bool, error) {
			return false, nil
		}),
		alert:   logUnauthorizedMethod,
		cascade: CascadeAbort,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Session exposes the coordinator's session state.
func (c *Coordinator) Session() *Session {
	return c.session
}

// LoadProfiles runs the profile load flow: fetch profiles, pick the active
// one, persist it, then load its monitors and credentials in sequence.
// Failures never escape; they are logged and turned into notifications, and
// the returned Outcome says how far the flow got.
func (c *Coordinator) LoadProfiles(ctx context.Context) Outcome {
	profiles, err := c.backend.ListProfiles(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[Sync] Error loading profiles")
		c.notifier.Notify(msgProfilesFailed, SeverityError)
		c.clearViews()
		return OutcomeProfilesFailed
	}
	log.Info().Int("count", len(profiles)).Msg("[Sync] Loaded profiles")
	c.sink.RenderProfiles(profiles)

	active, ok := api.ProfileList(profiles).Active()
	if !ok {
		log.Warn().Msg("[Sync] No active profile found")
		c.notifier.Notify(msgActivateProfile, SeverityWarning)
		c.clearViews()
		return OutcomeNoActiveProfile
	}

	if err := c.session.Activate(active.ID); err != nil {
		log.Error().Err(err).Str("profile_id", active.ID).Msg("[Cache] Failed to persist active profile")
	}
	c.sink.SelectProfile(active.ID)
	log.Info().Str("profile_id", active.ID).Str("name", active.Name).Msg("[Sync] Active profile set")

	if err := c.cascadeLoads(ctx, active.ID); err != nil {
		log.Error().Err(err).Str("profile_id", active.ID).Msg("[Sync] Error loading monitors or credentials")
		c.notifier.Notify(msgCascadeFailed, SeverityError)
		return OutcomeCascadeFailed
	}
	return OutcomeLoaded
}

func (c *Coordinator) cascadeLoads(ctx context.Context, profileID string) error {
	loads := []func(context.Context, string) error{c.LoadMonitors, c.LoadCredentials}
	var errs []error
	for _, load := range loads {
		if err := load(ctx, profileID); err != nil {
			if c.cascade == CascadeAbort {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Coordinator) clearViews() {
	c.sink.ClearCredentials()
	c.sink.ClearMonitors()
}
