package request

import (
	"errors"
	"strings"
	"time"

	"instacar/internal/domain/entities"
	"instacar/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// ConditionAnswerRequest is one answered condition question from the
// intake form: the question key and the signed price delta the intake
// scoring assigned to the answer.
type ConditionAnswerRequest struct {
	Key    string `json:"key" binding:"required"`
	Amount int64  `json:"amount"`
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type VehicleRequest struct {
	Year  int    `json:"year" binding:"required"`
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	VIN   string `json:"vin"`
}

// CreateQuoteRequest is the intake payload. BasePrice comes from the
// upstream valuation step; conditions carry the per-question penalties.
type CreateQuoteRequest struct {
	Customer   CustomerRequest          `json:"customer" binding:"required"`
	Vehicle    VehicleRequest           `json:"vehicle" binding:"required"`
	BasePrice  int64                    `json:"base_price" binding:"required"`
	Conditions []ConditionAnswerRequest `json:"conditions"`
}

// ResolveAdjustments maps answered conditions to adjustment deltas.
// A key answered twice keeps only the last answer; values replace,
// they never accumulate.
func (r CreateQuoteRequest) ResolveAdjustments() map[string]int64 {
	if len(r.Conditions) == 0 {
		return nil
	}
	out := make(map[string]int64, len(r.Conditions))
	for _, c := range r.Conditions {
		key := strings.TrimSpace(c.Key)
		if key == "" {
			continue
		}
		out[key] = c.Amount
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		Customer: entities.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Vehicle: entities.Vehicle{
			Year:  r.Vehicle.Year,
			Make:  strings.TrimSpace(r.Vehicle.Make),
			Model: strings.TrimSpace(r.Vehicle.Model),
			VIN:   strings.ToUpper(strings.TrimSpace(r.Vehicle.VIN)),
		},
		BasePrice:   r.BasePrice,
		Adjustments: r.ResolveAdjustments(),
	}
}

// LookupRequest re-derives an access token for a customer who lost
// their confirmation email.
type LookupRequest struct {
	Email     string `json:"email" binding:"required"`
	DisplayID string `json:"display_id" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
	Note   string `json:"note"`
}

type SchedulePickupRequest struct {
	Date         string `json:"date" binding:"required"`
	Window       string `json:"window" binding:"required"`
	Address      string `json:"address" binding:"required"`
	ContactName  string `json:"contact_name" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
}

// ResolveDate parses the pickup date. Range checks against the booking
// horizon happen in the usecase; this only rejects malformed input.
func (r SchedulePickupRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}

func (r SchedulePickupRequest) ToInput() (usecase.PickupInput, error) {
	date, err := r.ResolveDate()
	if err != nil {
		return usecase.PickupInput{}, err
	}
	return usecase.PickupInput{
		Date:         date,
		Window:       strings.TrimSpace(r.Window),
		Address:      r.Address,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
	}, nil
}

type RescheduleRequest struct {
	Date   string `json:"date" binding:"required"`
	Window string `json:"window" binding:"required"`
	Reason string `json:"reason"`
	Note   string `json:"note"`
}

func (r RescheduleRequest) ToInput() (usecase.RescheduleInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.RescheduleInput{}, err
	}
	return usecase.RescheduleInput{
		Date:   date,
		Window: strings.TrimSpace(r.Window),
		Reason: r.Reason,
		Note:   r.Note,
	}, nil
}

// UpdateContactRequest merges the provided fields; empty fields are
// left untouched.
type UpdateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r UpdateContactRequest) ToInput() usecase.ContactInput {
	return usecase.ContactInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type CompleteRequest struct {
	Note string `json:"note"`
}

type AdjustPriceRequest struct {
	Key    string `json:"key" binding:"required"`
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
