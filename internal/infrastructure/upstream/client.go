package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
)

// maxPayloadBytes bounds the upstream body read.
const maxPayloadBytes = 16 << 20

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch issues one GET and returns the body if it is valid JSON.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: API request failed with status %d", repository.ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", repository.ErrUpstreamUnavailable, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: upstream body is not JSON", entity.ErrMalformedPayload)
	}

	return body, nil
}
