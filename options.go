package bitfinex

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/mmquant/bfx-go/internal/client"
)

type config struct {
	client.Config

	accessKey string
	secretKey string
}

// Option is a function that can be passed to NewSDK to configure the SDK.
type Option func(cfg *config)

// WithHost configures the SDK to use the specified host, overriding the default.
func WithHost(host string) Option {
	return func(cfg *config) {
		cfg.Host = host
	}
}

// WithCredentials configures the SDK to sign private requests with the
// specified API key pair.
func WithCredentials(accessKey, secretKey string) Option {
	return func(cfg *config) {
		cfg.accessKey = accessKey
		cfg.secretKey = secretKey
	}
}

// WithClock configures the SDK to use the specified clock.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.Clock = c
	}
}

// WithLogger configures the SDK to log transport activity to the specified
// logger. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger
	}
}

// WithHTTPClient configures the SDK to use the specified HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) {
		cfg.HTTPClient = httpClient
	}
}

// WithMaxRetries configures how many times public GET requests are retried
// after transient failures. Signed requests are never retried.
func WithMaxRetries(n int) Option {
	return func(cfg *config) {
		cfg.MaxRetries = n
	}
}

// WithWithdrawConfigPath configures the path of the withdraw parameter file
// used by the withdraw endpoint.
func WithWithdrawConfigPath(path string) Option {
	return func(cfg *config) {
		cfg.WithdrawConfigPath = path
	}
}
