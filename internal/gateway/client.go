// Package gateway holds the HTTP clients for the external account store: the
// credential service and the OTP channel of the storefront backend. All
// request/response bodies are JSON; failures are translated into the apperr
// taxonomy so raw backend text never leaks past this package.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
)

const upstreamUnavailableMsg = "service temporarily unavailable, please try again"

// Client is the shared HTTP transport for both gateways.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With(zap.String("component", "gateway")),
	}
}

// apiError carries the upstream HTTP status and message for the calling
// gateway method to classify. It never reaches handlers directly.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.status, e.message)
}

// envelope is the common shape of upstream responses.
type envelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// do performs one JSON round-trip. A nil body sends no payload; out may be nil
// when only the status matters. Non-2xx responses with a decodable body come
// back as *apiError; transport failures and 5xx map straight to KindUpstream.
func (c *Client) do(ctx context.Context, method, path string, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperr.Wrap(apperr.KindUpstream, upstreamUnavailableMsg, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperr.Wrap(apperr.KindUpstream, upstreamUnavailableMsg, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Error("Upstream server error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apperr.Wrap(apperr.KindUpstream, upstreamUnavailableMsg,
			fmt.Errorf("status %d", resp.StatusCode))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
			return &apiError{status: resp.StatusCode, message: http.StatusText(resp.StatusCode)}
		}
		return &apiError{status: resp.StatusCode, message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperr.Wrap(apperr.KindUpstream, upstreamUnavailableMsg,
				fmt.Errorf("decode %s %s: %w", method, path, err))
		}
	}

	return nil
}
