package sentence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds each remote call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Remote is the HTTP client for the authoritative grading service.
type Remote struct {
	baseURL string
	client  *http.Client
}

var _ Validator = (*Remote)(nil)

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *Remote) { r.client = c }
}

// NewRemote creates a client for the validator at baseURL. A non-positive
// timeout selects DefaultTimeout.
func NewRemote(baseURL string, timeout time.Duration, opts ...RemoteOption) *Remote {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	r := &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BaseURL returns the validator base URL.
func (r *Remote) BaseURL() string { return r.baseURL }

// Validate asks the remote service for a verdict. Every failure mode is
// reported as *UnavailableError.
func (r *Remote) Validate(ctx context.Context, sentence, connective string) (Verdict, error) {
	body, err := json.Marshal(ValidateRequest{Sentence: sentence, Connective: connective})
	if err != nil {
		return Verdict{}, &UnavailableError{Reason: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+ValidatePath, bytes.NewReader(body))
	if err != nil {
		return Verdict{}, &UnavailableError{Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := r.client.Do(req)
	if err != nil {
		return Verdict{}, &UnavailableError{Reason: "transport", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Verdict{}, &UnavailableError{Reason: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	var out ValidateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return Verdict{}, &UnavailableError{Reason: "decode response", Err: err}
	}
	if !out.Success {
		reason := "service reported failure"
		if out.Error != "" {
			reason = out.Error
		}
		return Verdict{}, &UnavailableError{Reason: reason}
	}
	if out.Result == nil {
		return Verdict{}, &UnavailableError{Reason: "response missing result"}
	}
	return *out.Result, nil
}

// Status is the outcome of a liveness probe.
type Status struct {
	Available    bool
	LLMAvailable bool
	Version      string
	Err          error // Why the validator is unavailable, if known
}

// Probe checks whether the remote validator is usable. It never fails;
// problems are reported through Status.
func (r *Remote) Probe(ctx context.Context) Status {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+StatusPath, nil)
	if err != nil {
		return Status{Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Status{Err: fmt.Errorf("probe: %w", err)}
	}
	defer resp.Body.Close()

	var out StatusResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return Status{Err: fmt.Errorf("decode status (HTTP %d): %w", resp.StatusCode, err)}
	}
	if out.Status != StatusActive {
		return Status{Version: out.Version, Err: fmt.Errorf("validator status %q", out.Status)}
	}
	return Status{Available: true, LLMAvailable: out.LLMAvailable, Version: out.Version}
}
