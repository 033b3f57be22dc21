package directory

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/barsleague/rosterize/internal/cache"
)

// resolveSleepFunc is the sleep function used between retries (injectable
// for tests).
var resolveSleepFunc = time.Sleep

// Lookuper resolves a single email to an account id.
type Lookuper interface {
	Lookup(ctx context.Context, email string) (string, error)
}

// Resolver fans lookups out across a bounded set of workers, retrying
// transient failures per email and caching resolved ids.
type Resolver struct {
	client     Lookuper
	store      cache.Cache
	maxWorkers int
	maxRetries int
}

// NewResolver creates a resolver. A nil store disables caching.
func NewResolver(client Lookuper, store cache.Cache, maxWorkers, maxRetries int) *Resolver {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Resolver{
		client:     client,
		store:      store,
		maxWorkers: maxWorkers,
		maxRetries: maxRetries,
	}
}

// Resolve maps every email to its directory account id, or nil when the
// directory has no account or the lookup kept failing. Individual failures
// never propagate: an email that cannot be resolved is simply "not found".
func (r *Resolver) Resolve(ctx context.Context, emails []string) map[string]*string {
	results := make([]*string, len(emails))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, r.maxWorkers)

	for i, email := range emails {
		wg.Add(1)
		go func(idx int, email string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = r.resolveOne(ctx, email)
		}(i, email)
	}

	wg.Wait()

	resolved := make(map[string]*string, len(emails))
	for i, email := range emails {
		resolved[email] = results[i]
	}
	return resolved
}

// resolveOne looks up a single email with retry, consulting the cache first
// and writing hits back.
func (r *Resolver) resolveOne(ctx context.Context, email string) *string {
	key := cache.EmailKey(email)
	if r.store != nil {
		if val, found := r.store.Get(key); found {
			id := string(val)
			return &id
		}
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		id, err := r.client.Lookup(ctx, email)
		if err == nil {
			if r.store != nil {
				_ = r.store.Set(key, []byte(id), 0)
			}
			return &id
		}
		if !isRetryable(err) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if attempt < r.maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			resolveSleepFunc(backoff)
		}
	}
	return nil
}

// isRetryable classifies transient lookup failures: rate limiting and bad
// gateways on the directory side, name resolution failures, and
// timeout/connection-reset style network errors.
func isRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case 429, 502, 503, 504:
			return true
		}
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset")
}
