// Package httpgateway implements the backend gateway port over net/http.
package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/drk-digital/erstattungsportal/internal/ports/out/gateway"
)

// Gateway issues JSON-over-POST calls to the portal backend. Failures of any
// kind fold into the returned Result; Gateway never returns a Go error and
// never retries.
type Gateway struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Gateway {
	return NewWithClient(baseURL, nil)
}

func NewWithClient(baseURL string, httpClient *http.Client) *Gateway {
	if httpClient == nil {
		// Per-call deadlines come from the caller's timeout; the client itself
		// stays unbounded.
		httpClient = &http.Client{}
	}
	return &Gateway{baseURL: baseURL, client: httpClient}
}

func (g *Gateway) Call(ctx context.Context, action string, body any, timeout time.Duration) gateway.Result {
	return g.post(ctx, action, "", body, timeout)
}

func (g *Gateway) CallAuthenticated(ctx context.Context, action string, token string, body any, timeout time.Duration) gateway.Result {
	if token == "" {
		// Contract violation by the caller; fail without touching the network.
		return gateway.Result{}
	}
	return g.post(ctx, action, token, body, timeout)
}

func (g *Gateway) post(ctx context.Context, action, token string, body any, timeout time.Duration) gateway.Result {
	if body == nil {
		body = struct{}{}
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return gateway.Result{}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/"+action, bytes.NewReader(encoded))
	if err != nil {
		return gateway.Result{}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// Timeout, cancellation, and transport faults all land here.
		return gateway.Result{}
	}
	defer resp.Body.Close()

	result := gateway.Result{
		Succeeded:  resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
	}

	// Best-effort decode: a non-JSON or empty body yields a zero envelope.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return result
	}
	var env gateway.Envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		result.Data = env
	}
	return result
}

// WarmUp fires a single detached health probe to reduce first-call latency.
// It is best-effort: the probe is abandoned after timeout and every failure
// is suppressed. Subsequent application logic is unaffected either way.
func (g *Gateway) WarmUp(timeout time.Duration) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Cache-busting timestamp: the probe should reach the origin.
		url := fmt.Sprintf("%s/health?t=%d", g.baseURL, time.Now().UnixMilli())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
}
