// Package itemsapi is the client for the remote items service.
//
// List and Create never retry by themselves: each hands a single request closure to
// retry.Do, which re-invokes it on any failure.
package itemsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"itemlist/internal/config"
	"itemlist/internal/domain"
	"itemlist/internal/metrics"
	"itemlist/internal/ports"
	"itemlist/pkg/retry"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// HeaderRequestID carries one id per logical call, repeated on every attempt.
const HeaderRequestID = "X-Request-ID"

var _ ports.ItemAPI = (*Client)(nil)

type Client struct {
	baseURL string
	http    *http.Client
	policy  retry.Policy
	metrics *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithPolicy(p retry.Policy) Option {
	return func(c *Client) { c.policy = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds a client for cfg.BaseURL using retry.DefaultPolicy unless overridden.
func New(cfg config.API, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		policy:  retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every item.
func (c *Client) List(ctx context.Context) ([]domain.Item, error) {
	reqID := uuid.NewString()
	items, err := retry.Do(ctx, c.policy, func(ctx context.Context) ([]domain.Item, error) {
		var items []domain.Item
		if err := c.send(ctx, "list", reqID, http.MethodGet, nil, "failed to fetch items", &items); err != nil {
			return nil, err
		}
		return items, nil
	})
	c.observeCall("list", err)
	return items, err
}

// Create posts a new item and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, text string) (domain.Item, error) {
	body, err := json.Marshal(struct {
		Text string `json:"text"`
	}{text})
	if err != nil {
		return domain.Item{}, err
	}

	reqID := uuid.NewString()
	it, err := retry.Do(ctx, c.policy, func(ctx context.Context) (domain.Item, error) {
		var it domain.Item
		if err := c.send(ctx, "create", reqID, http.MethodPost, body, "failed to create item", &it); err != nil {
			return domain.Item{}, err
		}
		return it, nil
	})
	c.observeCall("create", err)
	return it, err
}

// send performs exactly one HTTP attempt.
func (c *Client) send(ctx context.Context, op, reqID, method string, body []byte, errPrefix string, out any) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/items", rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observeAttempt(op, "error")
		return err
	}
	defer resp.Body.Close()
	c.observeAttempt(op, strconv.Itoa(resp.StatusCode))

	log.Ctx(ctx).Debug().
		Str("method", method).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Msg("items api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPError{Op: errPrefix, StatusCode: resp.StatusCode, Status: statusText(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", errPrefix, err)
	}
	return nil
}

func (c *Client) observeAttempt(op, status string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ClientAttempts.WithLabelValues(op, status).Inc()
}

func (c *Client) observeCall(op string, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.metrics.ClientCalls.WithLabelValues(op, outcome).Inc()
}

func statusText(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
