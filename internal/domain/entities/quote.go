package entities

import "time"

// QuoteTTL is the time a quote stays actionable after creation.
const QuoteTTL = 7 * 24 * time.Hour

// Customer holds the contact details attached to a quote.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Vehicle describes the vehicle being quoted.
type Vehicle struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
	VIN   string `json:"vin,omitempty"`
}

// Pickup is present once a pickup has been arranged for the quote.
type Pickup struct {
	Date         time.Time `json:"date"`
	Window       string    `json:"window"`
	Address      string    `json:"address"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
}

// Pickup time windows accepted by the scheduling form.
const (
	PickupWindowMorning   = "morning"
	PickupWindowAfternoon = "afternoon"
	PickupWindowEvening   = "evening"
)

var validPickupWindows = map[string]bool{
	PickupWindowMorning:   true,
	PickupWindowAfternoon: true,
	PickupWindowEvening:   true,
}

// IsValidPickupWindow reports whether window is a known time window.
func IsValidPickupWindow(window string) bool {
	return validPickupWindows[window]
}

// Quote is the purchase quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (access_token-index): access_token
//   - GSI2 (display_id-index): display_id
//
// Monetary representation:
//   - BasePrice/Adjustments/FinalPrice are whole currency units.
//   - FinalPrice is derived; SetAdjustment and SetBasePrice recompute it
//     and no reader trusts a previously stored copy on its own.
//
// AccessToken is the capability credential for customer self-service.
// It is assigned exactly once at creation and never regenerated.

type Quote struct {
	ID          string           `json:"id"`
	DisplayID   string           `json:"display_id"`
	AccessToken string           `json:"access_token"`
	Customer    Customer         `json:"customer"`
	Vehicle     Vehicle          `json:"vehicle"`
	BasePrice   int64            `json:"base_price"`
	Adjustments map[string]int64 `json:"adjustments,omitempty"`
	FinalPrice  int64            `json:"final_price"`
	Status      QuoteStatus      `json:"status"`
	Pickup      *Pickup          `json:"pickup,omitempty"`
	ExpiresAt   time.Time        `json:"expires_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	AuditLog    []AuditEntry     `json:"audit_log,omitempty"`
}

// SetAdjustment sets the value for one adjustment key and recomputes
// the final price. Writing the same key twice replaces the earlier
// value; it never double-counts.
func (q *Quote) SetAdjustment(key string, amount int64) {
	if q.Adjustments == nil {
		q.Adjustments = make(map[string]int64)
	}
	q.Adjustments[key] = amount
	q.FinalPrice = ComputeFinalPrice(q.BasePrice, q.Adjustments)
}

// SetBasePrice replaces the base valuation and recomputes the final price.
func (q *Quote) SetBasePrice(basePrice int64) {
	q.BasePrice = basePrice
	q.FinalPrice = ComputeFinalPrice(q.BasePrice, q.Adjustments)
}

// IsExpired reports whether the quote deadline has passed at now.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

// EffectiveStatus derives the status visible to readers at now.
// A non-terminal quote past its deadline reads as Expired even if no
// writer has touched the record (lazy expiry).
func (q *Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if !q.Status.IsTerminal() && q.IsExpired(now) {
		return QuoteStatusExpired
	}
	return q.Status
}

// CanCancel reports whether the customer may still cancel at now.
func (q *Quote) CanCancel(now time.Time) bool {
	return !q.Status.IsTerminal() && !q.IsExpired(now)
}

// CanReschedule reports whether the customer may reschedule at now.
// A pickup must already exist to reschedule it.
func (q *Quote) CanReschedule(now time.Time) bool {
	return q.Status == QuoteStatusPickupScheduled && !q.IsExpired(now)
}

// AppendAudit appends one entry to the audit log. The log is append-only;
// entries are never mutated or removed.
func (q *Quote) AppendAudit(e AuditEntry) {
	q.AuditLog = append(q.AuditLog, e)
}
