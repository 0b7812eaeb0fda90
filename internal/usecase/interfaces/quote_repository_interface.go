package interfaces

import (
	"context"
	"errors"

	"instacar/internal/domain/entities"
)

// ErrStatusConflict is returned by SaveIfStatus when the stored status
// no longer matches the status the caller's guard was evaluated
// against. Exactly one of two racing conditional writes succeeds; the
// other receives this error.
var ErrStatusConflict = errors.New("quote status conflict")

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quote-service must be able to:
//   - create a quote once at intake (duplicate ids rejected)
//   - load by internal id (admin), access token (customer) and
//     display id (lookup) — missing records come back zero-valued
//   - save conditionally on the status the caller last observed,
//     which is the only synchronization point in the engine

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByToken(ctx context.Context, accessToken string) (entities.Quote, error)
	GetByDisplayID(ctx context.Context, displayID string) (entities.Quote, error)
	SaveIfStatus(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error)
}
