package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gsbevilaqua83/private-rest-api/internal/netx"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Post sends body as JSON to path with query attached. Any JSON answer is
// returned, whatever the status code.
func (c *HTTPClient) Post(ctx context.Context, path string, query url.Values, body any) (Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	_, data, err := netx.PostJSON(ctx, c.http, target, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrUnavailable)
	}

	return Response(data), nil
}
