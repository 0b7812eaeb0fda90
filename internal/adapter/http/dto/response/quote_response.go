package response

import (
	"time"

	"instacar/internal/domain/entities"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type VehicleResponse struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
	VIN   string `json:"vin,omitempty"`
}

type PickupResponse struct {
	Date         string `json:"date"`
	Window       string `json:"window"`
	Address      string `json:"address"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// QuoteResponse is the customer-facing view. It never carries the
// internal id or echoes the access token, and the canCancel /
// canReschedule flags are recomputed from status and clock on every
// read; no stored copy is trusted.
type QuoteResponse struct {
	DisplayID     string           `json:"display_id"`
	Status        string           `json:"status"`
	Customer      CustomerResponse `json:"customer"`
	Vehicle       VehicleResponse  `json:"vehicle"`
	BasePrice     int64            `json:"base_price"`
	Adjustments   map[string]int64 `json:"adjustments,omitempty"`
	FinalPrice    int64            `json:"final_price"`
	Pickup        *PickupResponse  `json:"pickup,omitempty"`
	ExpiresAt     time.Time        `json:"expires_at"`
	CanCancel     bool             `json:"can_cancel"`
	CanReschedule bool             `json:"can_reschedule"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	resp := QuoteResponse{
		DisplayID:     q.DisplayID,
		Status:        string(q.EffectiveStatus(now)),
		Customer:      CustomerResponse{Name: q.Customer.Name, Email: q.Customer.Email, Phone: q.Customer.Phone},
		Vehicle:       VehicleResponse{Year: q.Vehicle.Year, Make: q.Vehicle.Make, Model: q.Vehicle.Model, VIN: q.Vehicle.VIN},
		BasePrice:     q.BasePrice,
		Adjustments:   q.Adjustments,
		FinalPrice:    q.FinalPrice,
		ExpiresAt:     q.ExpiresAt,
		CanCancel:     q.CanCancel(now),
		CanReschedule: q.CanReschedule(now),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if q.Pickup != nil {
		resp.Pickup = &PickupResponse{
			Date:         q.Pickup.Date.Format("2006-01-02"),
			Window:       q.Pickup.Window,
			Address:      q.Pickup.Address,
			ContactName:  q.Pickup.ContactName,
			ContactPhone: q.Pickup.ContactPhone,
		}
	}
	return resp
}

// CreatedQuoteResponse is returned once, at intake. It is the only
// place the access token leaves the service over HTTP.
type CreatedQuoteResponse struct {
	QuoteResponse
	AccessToken string `json:"access_token"`
}

func FromCreatedQuote(q entities.Quote, now time.Time) CreatedQuoteResponse {
	return CreatedQuoteResponse{
		QuoteResponse: FromQuote(q, now),
		AccessToken:   q.AccessToken,
	}
}

type LookupResponse struct {
	Token string `json:"token"`
}

type AuditEntryResponse struct {
	Kind      string            `json:"kind"`
	Customer  bool              `json:"customer"`
	AdminID   string            `json:"admin_id,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Note      string            `json:"note,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Detail    map[string]string `json:"detail,omitempty"`
}

// AdminQuoteResponse additionally exposes the internal id, completion
// timestamp and the audit log. Admin UI only.
type AdminQuoteResponse struct {
	QuoteResponse
	ID          string               `json:"id"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	AuditLog    []AuditEntryResponse `json:"audit_log,omitempty"`
}

func FromAdminQuote(q entities.Quote, now time.Time) AdminQuoteResponse {
	resp := AdminQuoteResponse{
		QuoteResponse: FromQuote(q, now),
		ID:            q.ID,
		CompletedAt:   q.CompletedAt,
	}
	for _, e := range q.AuditLog {
		resp.AuditLog = append(resp.AuditLog, AuditEntryResponse{
			Kind:      string(e.Kind),
			Customer:  e.Actor.Customer,
			AdminID:   e.Actor.AdminID,
			Reason:    e.Reason,
			Note:      e.Note,
			Timestamp: e.Timestamp,
			Detail:    e.Detail,
		})
	}
	return resp
}
