package client

import (
	"context"
	"net/url"
)

type Client interface {
	Post(ctx context.Context, path string, query url.Values, body any) (Response, error)
}
