package entities

// QuoteStatus represents the lifecycle of a purchase quote.
//
// Domain notes:
//   - The quote-service is the source of truth for quote state.
//   - Status only moves forward through validNext; nothing outside the
//     usecase layer writes it.

type QuoteStatus string

const (
	QuoteStatusPending           QuoteStatus = "pending"
	QuoteStatusAccepted          QuoteStatus = "accepted"
	QuoteStatusPickupScheduled   QuoteStatus = "pickup_scheduled"
	QuoteStatusCustomerCancelled QuoteStatus = "customer_cancelled"
	QuoteStatusCompleted         QuoteStatus = "completed"
	QuoteStatusExpired           QuoteStatus = "expired"
)

var validNext = map[QuoteStatus]map[QuoteStatus]bool{
	QuoteStatusPending: {
		QuoteStatusAccepted:          true,
		QuoteStatusPickupScheduled:   true,
		QuoteStatusCustomerCancelled: true,
		QuoteStatusExpired:           true,
	},
	QuoteStatusAccepted: {
		QuoteStatusPickupScheduled:   true,
		QuoteStatusCustomerCancelled: true,
		QuoteStatusExpired:           true,
	},
	QuoteStatusPickupScheduled: {
		// A reschedule overwrites the pickup fields and stays here.
		QuoteStatusPickupScheduled:   true,
		QuoteStatusCustomerCancelled: true,
		QuoteStatusCompleted:         true,
		QuoteStatusExpired:           true,
	},
	QuoteStatusCustomerCancelled: {},
	QuoteStatusCompleted:         {},
	QuoteStatusExpired:           {},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to QuoteStatus) bool {
	return validNext[from][to]
}

// IsTerminal reports whether no further transition is defined for s.
func (s QuoteStatus) IsTerminal() bool {
	return len(validNext[s]) == 0
}

// IsValid reports whether s is one of the known statuses.
func (s QuoteStatus) IsValid() bool {
	_, ok := validNext[s]
	return ok
}
