// Package rest is the typed surface of the exchange's v1 REST API, one
// method per endpoint, built on the raw transport in internal/client.
package rest

import (
	"context"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mmquant/bfx-go/internal/client"
	"github.com/mmquant/bfx-go/rest/types"
)

const apiVersionPrefix = "/v1"

// Client exposes the v1 endpoints.
type Client struct {
	client *client.Client

	symbolsMu sync.RWMutex
	symbols   mapset.Set[string]
}

func NewClient(raw *client.Client) *Client {
	return &Client{client: raw}
}

// signedPost stamps the request path and a fresh nonce into body, then
// posts it signed. The endpoint URL is the request path without the version
// prefix plus a trailing slash, mirroring the server's v1 routing.
func (c *Client) signedPost(ctx context.Context, requestPath string, body types.Signable, out any) error {
	body.Stamp(requestPath, c.client.Nonces().Next())
	return c.client.SignedPost(ctx, strings.TrimPrefix(requestPath, apiVersionPrefix)+"/", body, out)
}

// nowSeconds is the default for the "until" parameters of the history
// endpoints.
func (c *Client) nowSeconds() int64 {
	return c.client.Clock().Now().Unix()
}
