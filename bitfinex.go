package bitfinex

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/mmquant/bfx-go/internal/client"
	"github.com/mmquant/bfx-go/pkg/auth"
	"github.com/mmquant/bfx-go/rest"
)

// DefaultHost is the production v1 API endpoint.
const DefaultHost = "https://api.bitfinex.com/v1"

// NewSDK creates a new SDK with the specified options.
//
// Without WithCredentials only the public endpoints are usable; private
// calls fail until credentials are supplied. Invalid key material is
// rejected here, not on the first request.
func NewSDK(options ...Option) (*SDK, error) {
	cfg := &config{
		Config: client.Config{
			Host:               DefaultHost,
			Clock:              clock.New(),
			Logger:             zerolog.Nop(),
			HTTPClient:         &http.Client{Timeout: 30 * time.Second},
			WithdrawConfigPath: "doc/withdraw.conf",
		},
	}
	for _, option := range options {
		option(cfg)
	}

	if cfg.accessKey != "" || cfg.secretKey != "" {
		creds, err := auth.NewCredentials(cfg.accessKey, cfg.secretKey)
		if err != nil {
			return nil, err
		}
		cfg.Credentials = &creds
	}
	cfg.Nonces = auth.NewNonceSource(cfg.Clock)

	rawClient := client.New(&cfg.Config)

	return &SDK{
		Rest:   rest.NewClient(rawClient),
		client: rawClient,
	}, nil
}

// SDK is the main entry point for communicating with the exchange.
type SDK struct {
	// Rest is the client for the v1 REST endpoints.
	Rest *rest.Client

	client *client.Client
}

// ReplaceCredentials swaps both API keys atomically. It is the only way to
// change key material after construction.
func (s *SDK) ReplaceCredentials(accessKey, secretKey string) error {
	return s.client.ReplaceCredentials(accessKey, secretKey)
}
