package dashboard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"statusdesk/api"
)

// loadScoped is the contract shared by every resource loader: skip quietly
// without a profile, fail with the response text on a non-2xx answer, and
// hand the records to render untouched otherwise.
func loadScoped[T any](ctx context.Context, retryPolicy RetryPolicy, kind, profileID string,
	fetch func(context.Context, string) ([]T, error), render func([]T)) error {
	if profileID == "" {
		log.Warn().Str("kind", kind).Msg("[Loader] No active profile found, skipping load")
		return nil
	}

	items, err := retry(ctx, retryPolicy, kind, func() ([]T, error) {
		return fetch(ctx, profileID)
	})
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", kind, err)
	}

	log.Info().Str("kind", kind).Str("profile_id", profileID).Int("count", len(items)).Msg("[Loader] Loaded")
	render(items)
	return nil
}

// LoadMonitors fetches the monitors of profileID into the sink.
func (c *Coordinator) LoadMonitors(ctx context.Context, profileID string) error {
	return loadScoped(ctx, c.retry, "monitors", profileID, c.backend.ListMonitors, c.sink.RenderMonitors)
}

// LoadCredentials fetches the credentials of profileID into the sink.
func (c *Coordinator) LoadCredentials(ctx context.Context, profileID string) error {
	return loadScoped(ctx, c.retry, "credentials", profileID, c.backend.ListCredentials, c.sink.RenderCredentials)
}

// LoadMethods fetches the notification methods of profileID into the sink
// and raises the unauthorized alert for every method flagged unauthorized.
// The alert fires again on every render.
func (c *Coordinator) LoadMethods(ctx context.Context, profileID string) error {
	return loadScoped(ctx, c.retry, "notification methods", profileID, c.backend.ListNotificationMethods,
		func(methods []api.NotificationMethod) {
			for _, m := range methods {
				if m.Unauthorized() {
					c.alert(m)
				}
			}
			c.sink.RenderMethods(methods)
		})
}

func logUnauthorizedMethod(m api.NotificationMethod) {
	log.Warn().Str("method_id", m.ID).Str("name", m.DisplayName()).Str("webhook_url", m.Setting("webhook_url")).
		Msg("[Loader] Unauthorized notification method")
}

// RefreshMonitors resolves the active profile and reloads monitors. Failures
// end up as a notification.
func (c *Coordinator) RefreshMonitors(ctx context.Context) error {
	return c.refresh(ctx, "Failed to load monitors", c.LoadMonitors)
}

// RefreshCredentials resolves the active profile and reloads credentials.
func (c *Coordinator) RefreshCredentials(ctx context.Context) error {
	return c.refresh(ctx, "Failed to load credentials", c.LoadCredentials)
}

// RefreshMethods resolves the active profile and reloads notification methods.
func (c *Coordinator) RefreshMethods(ctx context.Context) error {
	return c.refresh(ctx, "Failed to load notification methods", c.LoadMethods)
}

func (c *Coordinator) refresh(ctx context.Context, failure string, load func(context.Context, string) error) error {
	id, err := c.ResolveProfile()
	if err != nil {
		return nil
	}
	if err := load(ctx, id); err != nil {
		log.Error().Err(err).Str("profile_id", id).Msg("[Loader] Refresh failed")
		c.notifier.Notify(failure, SeverityError)
		return err
	}
	return nil
}
