package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Client fetches rate tables from {BaseURL}/latest/{base}. It never retries.
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
	Logger    *log.Logger

	now func() time.Time
}

var _ Provider = (*Client)(nil)

// NewClient builds a client. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: "jaskfx/1.0",
		HTTP:      &http.Client{Timeout: timeout},
		Logger:    logger,
		now:       time.Now,
	}
}

// Rate returns the rate from base to target.
func (c *Client) Rate(ctx context.Context, base, target string) (Quote, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if target == "" {
		return Quote{}, ErrEmptyCode
	}
	table, err := c.Latest(ctx, base)
	if err != nil {
		return Quote{}, err
	}
	rate, ok := table.Rates[target]
	if !ok || !(rate > 0) || math.IsInf(rate, 0) {
		c.log().Warn("rate missing from table", "base", table.Base, "target", target)
		return Quote{}, fmt.Errorf("%w: %s", ErrUnsupported, target)
	}
	return Quote{Base: table.Base, Target: target, Rate: rate, FetchedAt: table.FetchedAt}, nil
}

// Latest fetches the full rate table for base.
func (c *Client) Latest(ctx context.Context, base string) (Table, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return Table{}, ErrEmptyCode
	}

	reqID := uuid.NewString()
	logger := c.log().With("request_id", reqID, "base", base)
	endpoint := c.BaseURL + "/latest/" + url.PathEscape(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Table{}, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := c.clock()
	logger.Debug("fetching rates", "url", endpoint)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Warn("rate request failed", "err", err)
		return Table{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("rate request rejected", "status", resp.StatusCode)
		_, _ = io.Copy(io.Discard, resp.Body)
		return Table{}, &StatusError{Code: resp.StatusCode}
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warn("rate response unreadable", "err", err)
		return Table{}, fmt.Errorf("%w: decode: %v", ErrTransport, err)
	}
	if payload.Rates == nil {
		logger.Warn("rate response has no rates")
		return Table{}, fmt.Errorf("%w: response has no rates", ErrUnsupported)
	}

	fetchedAt := c.clock()
	table := Table{
		Base:      base,
		Date:      payload.Date,
		Rates:     payload.Rates,
		FetchedAt: fetchedAt,
	}
	if payload.Base != "" {
		table.Base = strings.ToUpper(payload.Base)
	}
	if payload.TimeLastUpdated > 0 {
		table.UpdatedAt = time.Unix(payload.TimeLastUpdated, 0).UTC()
	}
	logger.Info("rates fetched", "count", len(table.Rates), "took", fetchedAt.Sub(start))
	return table, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) log() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

func (c *Client) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}
