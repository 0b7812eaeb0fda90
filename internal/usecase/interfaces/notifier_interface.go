package interfaces

import (
	"context"

	"instacar/internal/domain/entities"
)

// INotifier abstracts the outbound notification collaborator (e.g. the
// Kafka event stream the email sender consumes).
//
// Dispatch is best-effort: the usecase logs and swallows errors, it
// never fails or retries the triggering action because of them.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
