package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NetworkError is returned for transport failures and non-2xx responses.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Temporary reports whether repeating the request may succeed.
func (e *NetworkError) Temporary() bool {
	return e.StatusCode == 0 || e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

const DefaultBackoff = 500 * time.Millisecond

type APIOption func(*API)

// WithHTTPClient replaces the default client. Tests point it at httptest servers.
func WithHTTPClient(c *http.Client) APIOption {
	return func(a *API) { a.client = c }
}

func WithTimeout(d time.Duration) APIOption {
	return func(a *API) { a.client.Timeout = d }
}

// WithRateLimit caps outgoing requests per second. rps <= 0 disables the limiter.
func WithRateLimit(rps int) APIOption {
	return func(a *API) {
		if rps <= 0 {
			a.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		a.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1)
	}
}

func WithRetries(n int, backoff time.Duration) APIOption {
	return func(a *API) {
		a.maxRetries = n
		a.backoff = backoff
	}
}

type API struct {
	client     *http.Client
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

func NewAPI(baseURL string, opts ...APIOption) *API {
	a := &API{
		client:     &http.Client{Timeout: 15 * time.Second, Transport: &LoggingTransport{}},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		maxRetries: 0,
		backoff:    DefaultBackoff,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Get issues a JSON GET against baseURL+path and decodes the body into v.
// Temporary failures are retried up to maxRetries times with linear backoff.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	u := a.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(a.backoff * time.Duration(attempt)):
			}
		}

		err := a.get(ctx, u, v)
		if err == nil {
			return nil
		}
		lastErr = err

		var netErr *NetworkError
		if !errors.As(err, &netErr) || !netErr.Temporary() || ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithField("attempt", attempt+1).Warn("request failed")
	}
	return lastErr
}

func (a *API) get(ctx context.Context, u string, v any) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := a.client.Do(req)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{URL: u, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", u)
	}
	return nil
}
