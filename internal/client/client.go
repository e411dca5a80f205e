// Package client talks to a running demo server's JSON API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"ng-jenkins-demo/internal/core"
	"ng-jenkins-demo/internal/notify"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type Health struct {
	Status string `json:"status"`
}

type Pipeline struct {
	Name   string               `json:"name"`
	Status core.BuildInfo       `json:"status"`
	Stages []core.NumberedStage `json:"stages"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.get(ctx, "/health", &h); err != nil {
		return h, err
	}
	if h.Status != "healthy" {
		return h, fmt.Errorf("unexpected status %q", h.Status)
	}
	return h, nil
}

// WaitHealthy polls /health until it answers or the attempts run out.
func (c *Client) WaitHealthy(ctx context.Context, attempts uint, delay time.Duration) (Health, error) {
	var h Health
	err := retry.Do(func() error {
		var err error
		h, err = c.Health(ctx)
		return err
	},
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Info("waiting for server", "attempt", n+1, "err", err)
		}),
	)
	return h, err
}

func (c *Client) Pipeline(ctx context.Context) (Pipeline, error) {
	var p Pipeline
	err := c.get(ctx, "/api/pipeline", &p)
	return p, err
}

func (c *Client) Notification(ctx context.Context, action string) (notify.Notification, error) {
	var n notify.Notification
	err := c.get(ctx, "/api/notifications/"+url.PathEscape(action), &n)
	return n, err
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
