// internal/adapters/travel/client.go
package travel

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"resty.dev/v3"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/domain"
)

const (
	attractionsPath = "/attractions/list-by-latlng"
	maxErrBody      = 4096
)

// Query is the fixed search area sent with every attractions request.
type Query struct {
	Longitude string
	Latitude  string
	Unit      string // lunit: km|mi
	Currency  string
	Lang      string
}

func (q Query) params() map[string]string {
	return map[string]string{
		"longitude": q.Longitude,
		"latitude":  q.Latitude,
		"lunit":     q.Unit,
		"currency":  q.Currency,
		"lang":      q.Lang,
	}
}

// Client talks to the Travel Advisor API through RapidAPI.
type Client struct {
	hc    *resty.Client
	query Query
}

// New builds the client. A missing key is not fatal: RapidAPI rejects the
// request and the attractions screen shows that as a failed fetch.
func New(base, key, host string, q Query, timeout time.Duration) (*Client, error) {
	if base == "" {
		return nil, errors.New("attractions base URL is required")
	}
	hc := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetHeader("X-RapidAPI-Host", host).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "travel-catalog/1.0")
	if key != "" {
		hc.SetHeader("X-RapidAPI-Key", key)
	}
	if timeout > 0 {
		hc.SetTimeout(timeout)
	}
	return &Client{hc: hc, query: q}, nil
}

func (c *Client) Close() error { return c.hc.Close() }

type listResponse struct {
	Data []domain.Attraction `json:"data"`
}

// Attractions fetches the attractions around the configured point. The data
// array is returned as the API sent it.
func (c *Client) Attractions(ctx context.Context) ([]domain.Attraction, error) {
	start := time.Now()
	resp, err := c.hc.R().
		SetContext(ctx).
		SetQueryParams(c.query.params()).
		Get(attractionsPath)
	if err != nil {
		observability.ObserveExternal("travel_advisor", attractionsPath, 0, time.Since(start))
		return nil, &domain.NetworkError{URL: attractionsPath, Err: err}
	}
	observability.ObserveExternal("travel_advisor", attractionsPath, resp.StatusCode(), time.Since(start))

	body := resp.String()
	if !resp.IsSuccess() {
		body = excerpt(body, maxErrBody)
		return nil, &domain.HTTPStatusError{URL: attractionsPath, Status: resp.StatusCode(), Body: strings.TrimSpace(body)}
	}

	var out listResponse
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, &domain.DecodeError{URL: attractionsPath, Err: err}
	}
	if out.Data == nil {
		return nil, &domain.DecodeError{URL: attractionsPath, Err: errors.New(`missing "data" array`)}
	}
	return out.Data, nil
}

// excerpt cuts s to at most n bytes without splitting a rune.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
