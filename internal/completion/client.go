package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// fallbackErrorMessage is reported when a failing gateway response carries no
// detail of its own.
const fallbackErrorMessage = "Request failed"

// Client talks to the completion gateway. Complete and TestConnection never
// return Go errors: the editing hot path treats every outcome as data.
// ListProviders and ListModels gate the settings UI instead and fail fast.
type Client struct {
	baseURL string
	http    *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient overrides the transport, mainly for tests and for callers
// that need a different timeout than the 60s default.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete issues one completion exchange. Transport faults, non-200s, and
// unreadable bodies all normalize to a response with finish_reason "error";
// the user's text is never at risk from an AI failure.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) CompletionResponse {
	var resp CompletionResponse
	status, err := c.postJSON(ctx, "/complete", req, &resp)
	if err != nil {
		return CompletionResponse{
			FinishReason: FinishError,
			ErrorMessage: err.Error(),
		}
	}
	if status != http.StatusOK || resp.FinishReason == "" {
		msg := resp.ErrorMessage
		if msg == "" {
			msg = fallbackErrorMessage
		}
		return CompletionResponse{
			FinishReason: FinishError,
			ErrorMessage: msg,
		}
	}
	return resp
}

// TestConnection probes the configured provider. Same normalization as
// Complete: failure is a false success with a message, never a fault.
func (c *Client) TestConnection(ctx context.Context, req TestConnectionRequest) TestConnectionResponse {
	var resp TestConnectionResponse
	status, err := c.postJSON(ctx, "/test", req, &resp)
	if err != nil {
		return TestConnectionResponse{Success: false, Message: err.Error()}
	}
	if status != http.StatusOK {
		msg := resp.Message
		if msg == "" {
			msg = fallbackErrorMessage
		}
		return TestConnectionResponse{Success: false, Message: msg}
	}
	return resp
}

// ProviderListError is raised from the catalog operations. Configuration-time
// failures halt their flow visibly instead of being swallowed.
type ProviderListError struct {
	Op     string
	Status int
	Err    error
}

func (e *ProviderListError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *ProviderListError) Unwrap() error { return e.Err }

func (c *Client) ListProviders(ctx context.Context) ([]ProviderInfo, error) {
	var providers []ProviderInfo
	if err := c.getJSON(ctx, "/providers", "list providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *Client) ListModels(ctx context.Context, providerType string) ([]ModelInfo, error) {
	var models []ModelInfo
	if err := c.getJSON(ctx, "/models/"+providerType, "list models", &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Non-200 bodies still carry the normalized error shape when the gateway
	// produced them; decode failures are reported by the caller's fallback.
	_ = json.NewDecoder(resp.Body).Decode(out)
	return resp.StatusCode, nil
}

func (c *Client) getJSON(ctx context.Context, path, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &ProviderListError{Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ProviderListError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ProviderListError{Op: op, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderListError{Op: op, Err: err}
	}
	return nil
}
