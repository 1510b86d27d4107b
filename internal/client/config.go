package client

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/mmquant/bfx-go/pkg/auth"
)

// Config is the configuration for the client.
type Config struct {
	Host               string            // base URL of the v1 API
	Clock              clock.Clock       // the clock to use
	Logger             zerolog.Logger    // transport logger, a no-op logger by default
	HTTPClient         *http.Client      // the HTTP client to use
	Credentials        *auth.Credentials // key material, nil for public-only use
	Nonces             *auth.NonceSource // nonce source shared across authenticated calls
	MaxRetries         int               // additional attempts for public GETs
	WithdrawConfigPath string            // path to the withdraw parameter file
}
