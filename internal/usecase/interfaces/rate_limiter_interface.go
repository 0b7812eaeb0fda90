package interfaces

import "context"

// IRateLimiter throttles anonymous callers by an identity key (client
// IP or similar). The token lookup endpoint uses it to slow guessing
// of email/display-id pairs.
type IRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
