package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"autoservice-backend/internal/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrNotConfigured = errors.New("spreadsheet script url not configured")

// Client talks to the Apps Script web app that fronts the shop spreadsheet.
// GET returns every row; POST with an action field appends or patches a row.
type Client struct {
	scriptURL  string
	httpClient *http.Client
	backoffs   []time.Duration
}

type addPayload struct {
	Action string `json:"action"`
	models.RepairRequest
}

type updateStatusPayload struct {
	Action string              `json:"action"`
	ID     string              `json:"id"`
	Status models.RepairStatus `json:"status"`
}

func NewClient(scriptURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		scriptURL: scriptURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		backoffs: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// WithBackoffs replaces the retry schedule.
func (c *Client) WithBackoffs(backoffs ...time.Duration) *Client {
	c.backoffs = backoffs
	return c
}

func (c *Client) Configured() bool {
	return c != nil && c.scriptURL != ""
}

// Fetch reads every row of the sheet. Apps Script answers GET with a 302 to
// googleusercontent.com, which the default client follows.
func (c *Client) Fetch(ctx context.Context) ([]models.RepairRequest, error) {
	ctx, span := otel.Tracer("sheets").Start(ctx, "SheetsFetch")
	defer span.End()

	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scriptURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("failed to fetch rows: status %d, body: %s", resp.StatusCode, truncate(body, 200))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	requests, err := decodeRows(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("rows", len(requests)))
	return requests, nil
}

// Append adds the request as a new row.
func (c *Client) Append(ctx context.Context, request models.RepairRequest) error {
	ctx, span := otel.Tracer("sheets").Start(ctx, "SheetsAppend")
	defer span.End()
	span.SetAttributes(attribute.String("requestID", request.ID))

	err := c.post(ctx, addPayload{Action: "add", RepairRequest: request})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append failed")
	}
	return err
}

// UpdateStatus patches the status column of the row whose id matches.
func (c *Client) UpdateStatus(ctx context.Context, id string, status models.RepairStatus) error {
	ctx, span := otel.Tracer("sheets").Start(ctx, "SheetsUpdateStatus")
	defer span.End()
	span.SetAttributes(
		attribute.String("requestID", id),
		attribute.String("status", string(status)),
	)

	err := c.post(ctx, updateStatusPayload{Action: "updateStatus", ID: id, Status: status})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
	}
	return err
}

// post sends the payload as text/plain, which is what the script expects.
// The response body is never interpreted.
func (c *Client) post(ctx context.Context, payload interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("spreadsheet write rejected: status %d", resp.StatusCode)
	}
	return nil
}

// RetryWithBackoff executes fn up to maxRetries times, sleeping between
// attempts according to the client's schedule; attempts past the end of the
// schedule wait the last delay. It stops early when ctx ends.
func (c *Client) RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNotConfigured) {
			return err
		}

		lastErr = err
		if i == maxRetries-1 || len(c.backoffs) == 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		case <-time.After(c.backoffs[min(i, len(c.backoffs)-1)]):
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
