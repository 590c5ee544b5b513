package dataset

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultTimeout        = 60 * time.Second
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 10 * time.Second
)

// Fetcher downloads a dataset over HTTP, retrying transport errors, 429 and
// 5xx responses with exponential backoff.
type Fetcher struct {
	client         *http.Client
	retries        int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewFetcher returns a Fetcher. Non-positive timeout uses the default;
// negative retries mean a single attempt.
func NewFetcher(timeout time.Duration, retries int) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if retries < 0 {
		retries = 0
	}
	return &Fetcher{
		client:         &http.Client{Timeout: timeout},
		retries:        retries,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}
}

// Fetch returns the body of url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, retry, err := f.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry || attempt == f.retries {
			break
		}

		wait := backoff(f.initialBackoff, attempt, f.maxBackoff)
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"url":     url,
			"attempt": attempt + 1,
			"wait":    wait,
			"error":   err,
		}).Warn("fetch failed, retrying")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, lastErr)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	return body, false, nil
}

func backoff(initial time.Duration, attempt int, max time.Duration) time.Duration {
	d := initial << uint(attempt)
	if d <= 0 || d > max {
		return max
	}
	return d
}
