package auth

import (
	"strconv"
	"sync"

	"github.com/benbjohnson/clock"
)

// NonceSource issues the strictly increasing nonces the exchange requires
// across authenticated requests made with one credential. Values are
// millisecond Unix timestamps, bumped past the previously issued value when
// the clock has not advanced between calls, so rapid successive calls never
// produce a duplicate or out-of-order nonce.
//
// A single NonceSource must be shared by every caller using the same
// credential. It is safe for concurrent use.
type NonceSource struct {
	clock clock.Clock

	mu   sync.Mutex
	last int64
}

func NewNonceSource(c clock.Clock) *NonceSource {
	return &NonceSource{clock: c}
}

// Next returns the next nonce as a decimal string.
func (n *NonceSource) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.clock.Now().UnixMilli()
	if now <= n.last {
		now = n.last + 1
	}
	n.last = now
	return strconv.FormatInt(now, 10)
}
