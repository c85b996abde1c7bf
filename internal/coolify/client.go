// Package coolify is the HTTP transport to the Coolify REST API. Every call is
// a single round trip that always yields a Result; it never returns an error.
package coolify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
)

// APIPrefix is prepended to every request path.
const APIPrefix = "/api/v1"

// maxResponseSize caps the response body to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

const tracerName = "github.com/bobmcallan/coolify-mcp/internal/coolify"

// Client sends requests to the Coolify API with a fixed base URL and bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *common.Logger
	tracer     trace.Tracer
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the configured Coolify instance.
// No timeout is set on the http.Client; the caller's context bounds each call.
func NewClient(cfg config.CoolifyConfig, logger *common.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{},
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured Coolify root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the absolute URL for a path below the API prefix.
func (c *Client) URL(path string) string {
	return c.baseURL + APIPrefix + path
}

// Send performs one request and normalizes the outcome. GET requests never
// carry a body; for other methods body is JSON-encoded when non-nil.
func (c *Client) Send(ctx context.Context, path, method string, body any) Result {
	ctx, span := c.tracer.Start(ctx, "coolify.request", trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", APIPrefix+path),
		))
	defer span.End()

	result := c.send(ctx, path, method, body)

	if result.Status != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", *result.Status))
	}
	if !result.Success {
		span.SetStatus(codes.Error, result.Error)
	}
	return result
}

func (c *Client) send(ctx context.Context, path, method string, body any) Result {
	c.logger.Debug().Str("method", method).Str("path", path).Msg("coolify request")

	var bodyReader io.Reader
	if method != http.MethodGet && body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return transportFailure(fmt.Errorf("failed to marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), bodyReader)
	if err != nil {
		return transportFailure(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("coolify request failed")
		return transportFailure(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		// The status line arrived; a truncated body is treated as non-JSON.
		c.logger.Warn().Str("path", path).Str("error", err.Error()).Msg("failed to read coolify response")
		respBody = nil
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("coolify response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failureResult(resp.StatusCode, respBody)
	}
	return successResult(resp.StatusCode, respBody)
}
