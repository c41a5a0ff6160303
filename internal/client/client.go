// Package client talks to the record API and keeps the last fetched
// collections in a view.State. Every mutation is followed by a re-fetch of
// the affected collection; nothing is patched locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/view"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server answered %d", e.Status)
	}
	return fmt.Sprintf("server answered %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	mu    sync.Mutex
	state *view.State
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a client for the server at baseURL that stores fetched
// collections in state.
func New(baseURL string, state *view.State, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
		state:   state,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the state object the client fills.
func (c *Client) State() *view.State {
	return c.state
}

func (c *Client) FetchFeedings(ctx context.Context) error {
	records, err := fetch[models.FeedingRecord](ctx, c, models.ResourceFeedings)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Feedings = records
	c.mu.Unlock()
	return nil
}

func (c *Client) FetchMessages(ctx context.Context) error {
	msgs, err := fetch[models.Message](ctx, c, models.ResourceMessages)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Messages = msgs
	c.mu.Unlock()
	return nil
}

func (c *Client) FetchImages(ctx context.Context) error {
	images, err := fetch[models.ImageRecord](ctx, c, models.ResourceImages)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Images = images
	c.mu.Unlock()
	return nil
}

// FetchAll refreshes every collection. Collections that fail keep their
// previous content; the first error is returned.
func (c *Client) FetchAll(ctx context.Context) error {
	var first error
	for _, f := range []func(context.Context) error{c.FetchFeedings, c.FetchMessages, c.FetchImages} {
		if err := f(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (c *Client) AddFeeding(ctx context.Context, t models.FeedingType) error {
	if err := c.send(ctx, http.MethodPost, "/api/feedings", models.FeedingRequest{Type: t}); err != nil {
		return err
	}
	return c.FetchFeedings(ctx)
}

func (c *Client) DeleteFeeding(ctx context.Context, id int64) error {
	deleted := true
	if err := c.send(ctx, http.MethodPut, "/api/feedings/"+strconv.FormatInt(id, 10), models.FeedingPatch{Deleted: &deleted}); err != nil {
		return err
	}
	return c.FetchFeedings(ctx)
}

func (c *Client) PostMessage(ctx context.Context, content string) error {
	if err := c.send(ctx, http.MethodPost, "/api/messages", models.MessageRequest{Content: content}); err != nil {
		return err
	}
	return c.FetchMessages(ctx)
}

// LikeMessage uses the server-side increment rather than writing back a
// locally computed count.
func (c *Client) LikeMessage(ctx context.Context, id int64) error {
	if err := c.send(ctx, http.MethodPost, "/api/messages/"+strconv.FormatInt(id, 10)+"/like", nil); err != nil {
		return err
	}
	return c.FetchMessages(ctx)
}

func (c *Client) DeleteMessage(ctx context.Context, id int64) error {
	deleted := true
	if err := c.send(ctx, http.MethodPut, "/api/messages/"+strconv.FormatInt(id, 10), models.MessagePatch{Deleted: &deleted}); err != nil {
		return err
	}
	return c.FetchMessages(ctx)
}

func (c *Client) UploadImage(ctx context.Context, imageURL string) error {
	if err := c.send(ctx, http.MethodPost, "/api/images/upload", models.ImageRequest{URL: imageURL}); err != nil {
		return err
	}
	return c.FetchImages(ctx)
}

// Chart asks the server for the daily feeding counts in tz. An empty tz
// uses the server default.
func (c *Client) Chart(ctx context.Context, tz string) ([]view.ChartPoint, error) {
	path := "/api/stats/feedings"
	if tz != "" {
		path += "?tz=" + url.QueryEscape(tz)
	}

	var points []view.ChartPoint
	if err := c.do(ctx, http.MethodGet, path, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func fetch[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	var records []T
	if err := c.do(ctx, http.MethodGet, "/api/"+resource, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	return c.do(ctx, method, path, body, nil)
}

// do performs one request. Failures are logged here so callers may ignore
// them, as the dashboard does.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	err := c.roundTrip(ctx, method, path, body, out)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var er models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil {
			apiErr.Message = er.Message
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
