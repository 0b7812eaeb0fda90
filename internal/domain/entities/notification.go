package entities

// NotificationKind identifies the notification an action requests.

type NotificationKind string

const (
	NotifyQuoteCreated    NotificationKind = "quote_created"
	NotifyQuoteAccepted   NotificationKind = "quote_accepted"
	NotifyQuoteCancelled  NotificationKind = "quote_cancelled"
	NotifyPickupScheduled NotificationKind = "pickup_scheduled"
	NotifyPickupChanged   NotificationKind = "pickup_changed"
	NotifyContactUpdated  NotificationKind = "contact_updated"
	NotifyQuoteCompleted  NotificationKind = "quote_completed"
	NotifyPriceAdjusted   NotificationKind = "price_adjusted"
)

// Notification is a fire-and-forget request emitted after a successful
// action. The downstream sender decides channels and recipients per
// kind; the engine emits exactly one request per action and never
// retries.
type Notification struct {
	Kind          NotificationKind  `json:"kind"`
	QuoteID       string            `json:"quote_id"`
	DisplayID     string            `json:"display_id"`
	CustomerEmail string            `json:"customer_email"`
	Data          map[string]string `json:"data,omitempty"`
}
