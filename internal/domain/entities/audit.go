package entities

import "time"

// ActionKind identifies the action an audit entry records.

type ActionKind string

const (
	ActionCreated         ActionKind = "created"
	ActionAccepted        ActionKind = "accepted"
	ActionCancelled       ActionKind = "cancelled"
	ActionRescheduled     ActionKind = "rescheduled"
	ActionPickupScheduled ActionKind = "pickup_scheduled"
	ActionContactUpdated  ActionKind = "contact_updated"
	ActionCompleted       ActionKind = "completed"
	ActionPriceAdjusted   ActionKind = "price_adjusted"
)

// CancelReason values accepted from the self-service cancel form.
const (
	CancelReasonChangedMind   = "changed_mind"
	CancelReasonSoldElsewhere = "sold_elsewhere"
	CancelReasonPriceTooLow   = "price_too_low"
	CancelReasonOther         = "other"
)

var validCancelReasons = map[string]bool{
	CancelReasonChangedMind:   true,
	CancelReasonSoldElsewhere: true,
	CancelReasonPriceTooLow:   true,
	CancelReasonOther:         true,
}

// IsValidCancelReason reports whether reason is a known cancel reason.
// The empty reason is allowed; the form does not require one.
func IsValidCancelReason(reason string) bool {
	return reason == "" || validCancelReasons[reason]
}

// Actor records who performed an audited action: either the customer
// acting through a capability token, or an identified admin.
type Actor struct {
	Customer bool   `json:"customer"`
	AdminID  string `json:"admin_id,omitempty"`
}

// CustomerActor is the actor for token-authorized self-service actions.
func CustomerActor() Actor {
	return Actor{Customer: true}
}

// AdminActor is the actor for actions performed by an identified admin.
func AdminActor(adminID string) Actor {
	return Actor{AdminID: adminID}
}

// AuditEntry is one element of a quote's append-only audit log.
//
// Detail is a free-form snapshot of the fields the action changed. It
// exists for audit and debugging; state is never reconstructed from it.
type AuditEntry struct {
	Kind      ActionKind        `json:"kind"`
	Actor     Actor             `json:"actor"`
	Reason    string            `json:"reason,omitempty"`
	Note      string            `json:"note,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Detail    map[string]string `json:"detail,omitempty"`
}
