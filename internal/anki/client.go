// Package anki is the AnkiConnect client: one call-and-response Invoke plus
// typed wrappers for the actions the tool layer uses.
package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultURL is where AnkiConnect listens when Anki runs locally.
const DefaultURL = "http://127.0.0.1:8765"

// apiVersion is the AnkiConnect protocol version this client speaks.
const apiVersion = 6

// Client talks to one AnkiConnect endpoint. The endpoint is fixed at
// construction; there is no process-wide mutable default.
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

// NewClient builds a client for the given endpoint. An empty url falls back
// to DefaultURL, a zero timeout to 10 seconds.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// Invoke performs one AnkiConnect action. Transport failures and API-level
// failures both come back as *Error carrying the action name; API-level
// messages are rewritten when a known failure pattern matches. No retries.
func (c *Client) Invoke(ctx context.Context, action string, params any) (json.RawMessage, error) {
	payload, err := json.Marshal(request{Action: action, Version: apiVersion, Params: params})
	if err != nil {
		return nil, &Error{Action: action, Message: fmt.Sprintf("encode request: %v", err), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Action: action, Message: fmt.Sprintf("build request: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Action: action, Message: fmt.Sprintf("anki-connect unreachable at %s: %v", c.url, err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Action: action, Message: fmt.Sprintf("anki-connect status %d", resp.StatusCode)}
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &Error{Action: action, Message: fmt.Sprintf("malformed response: %v", err), Err: err}
	}

	if decoded.Error != nil && *decoded.Error != "" {
		apiErr := semanticError(action, *decoded.Error)
		c.logger.Debug("anki-connect action failed",
			zap.String("action", action), zap.String("error", *decoded.Error))
		return nil, apiErr
	}

	return decoded.Result, nil
}

// invokeInto runs an action and unmarshals its result.
func (c *Client) invokeInto(ctx context.Context, action string, params any, out any) error {
	raw, err := c.Invoke(ctx, action, params)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Action: action, Message: fmt.Sprintf("unexpected result shape: %v", err), Err: err}
	}
	return nil
}
