package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"statusdesk/api"
)

// RetryPolicy enables bounded retries at the loader boundary. The zero value
// disables retrying, which is the default.
type RetryPolicy struct {
	Attempts        int
	InitialInterval time.Duration
}

func (p RetryPolicy) enabled() bool {
	return p.Attempts > 1
}

// retry runs op under p. Client errors (4xx other than 429) are not retried.
func retry[T any](ctx context.Context, p RetryPolicy, kind string, op func() (T, error)) (T, error) {
	if !p.enabled() {
		return op()
	}

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}

	attempt := 0
	return backoff.Retry(ctx, func() (T, error) {
		attempt++
		v, err := op()
		if err == nil {
			return v, nil
		}
		var re *api.ResponseError
		if errors.As(err, &re) && !re.Temporary() {
			return v, backoff.Permanent(err)
		}
		log.Warn().Err(err).Str("kind", kind).Int("attempt", attempt).Int("max", p.Attempts).Msg("[Loader] Fetch failed, retrying")
		return v, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(uint(p.Attempts)))
}
