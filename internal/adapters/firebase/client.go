// internal/adapters/firebase/client.go
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/domain"
)

// Client reads catalog documents from a Firebase realtime database over its REST API.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New builds a client. timeout 0 leaves the transport default in place.
func New(base string, rps int, timeout time.Duration) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

func (c *Client) Hotels(ctx context.Context) ([]domain.Hotel, error) {
	return fetchDocument(ctx, c, domain.Hotels, func(h *domain.Hotel, key string) {
		if h.ID == "" {
			h.ID = domain.ID(key)
		}
	})
}

func (c *Client) Flights(ctx context.Context) ([]domain.Flight, error) {
	return fetchDocument(ctx, c, domain.Flights, func(f *domain.Flight, key string) {
		if f.ID == "" {
			f.ID = domain.ID(key)
		}
	})
}

func (c *Client) Rentals(ctx context.Context) ([]domain.Rental, error) {
	return fetchDocument(ctx, c, domain.Rentals, func(r *domain.Rental, key string) {
		if r.ID == "" {
			r.ID = domain.ID(key)
		}
	})
}

// ---- Internals ----

// fetchDocument GETs <base>/<document>.json and normalizes it into a slice.
// Object bodies become their values (keyed records get the key as id when
// they lack one), array bodies are returned as-is and null means empty.
func fetchDocument[T any](ctx context.Context, c *Client, cat domain.Category, keyed func(*T, string)) ([]T, error) {
	url := fmt.Sprintf("%s/%s.json", c.base, cat.Document())
	body, err := c.get(ctx, url, string(cat))
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return []T{}, nil

	case trimmed[0] == '{':
		var m map[string]*T
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, &domain.DecodeError{URL: url, Err: err}
		}
		recs := make(map[string]T, len(m))
		for k, v := range m {
			if v == nil {
				continue
			}
			keyed(v, k)
			recs[k] = *v
		}
		return domain.Values(recs), nil

	case trimmed[0] == '[':
		var arr []*T
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, &domain.DecodeError{URL: url, Err: err}
		}
		out := make([]T, 0, len(arr))
		for _, v := range arr {
			// sparse arrays come back with null holes
			if v != nil {
				out = append(out, *v)
			}
		}
		return out, nil
	}
	return nil, &domain.DecodeError{URL: url, Err: errors.New("expected JSON object or array")}
}

// get performs one rate-limited GET and returns the body of a 2xx response.
// There is no retry: failures are surfaced to the caller as typed errors.
func (c *Client) get(ctx context.Context, url, endpoint string) ([]byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travel-catalog/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("firebase", endpoint, 0, time.Since(start))
		return nil, &domain.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("firebase", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.HTTPStatusError{URL: url, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}
	return body, nil
}
