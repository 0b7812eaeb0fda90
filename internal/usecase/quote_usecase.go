package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"instacar/internal/domain/entities"
	"instacar/internal/domain/token"
	"instacar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrQuoteExpired         = errors.New("quote expired")
	ErrStateConflict        = errors.New("quote state conflict")
	ErrInvalidToken         = errors.New("invalid access token")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrUnauthorized         = errors.New("admin identity required")
	ErrRateLimited          = errors.New("too many lookup attempts")
	ErrInvalidCustomer      = errors.New("invalid customer details")
	ErrInvalidVehicle       = errors.New("invalid vehicle details")
	ErrInvalidBasePrice     = errors.New("invalid base price")
	ErrInvalidLookupInput   = errors.New("invalid lookup input")
	ErrInvalidCancelReason  = errors.New("invalid cancel reason")
	ErrInvalidPickupDate    = errors.New("invalid pickup date")
	ErrInvalidPickupDetails = errors.New("invalid pickup details")
	ErrInvalidContact       = errors.New("invalid contact fields")
	ErrInvalidAdjustment    = errors.New("invalid price adjustment")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const maxTokenIssueAttempts = 5

// CreateQuoteInput is the intake command. BasePrice comes from the
// external valuation; Adjustments carry one signed delta per condition
// question, already deduplicated last-value-wins by the request layer.
type CreateQuoteInput struct {
	Customer    entities.Customer
	Vehicle     entities.Vehicle
	BasePrice   int64
	Adjustments map[string]int64
}

// PickupInput carries the details required to arrange a pickup.
type PickupInput struct {
	Date         time.Time
	Window       string
	Address      string
	ContactName  string
	ContactPhone string
}

// RescheduleInput moves an existing pickup to a new date and window.
type RescheduleInput struct {
	Date   time.Time
	Window string
	Reason string
	Note   string
}

// ContactInput merges non-empty fields into the quote's contact
// details. Empty fields are left untouched.
type ContactInput struct {
	Name  string
	Email string
	Phone string
}

// IQuoteUseCase exposes the quote lifecycle operations.
//
// Every state-changing operation follows the same shape:
// authorize -> lazy-expiry check -> guard -> mutate -> audit ->
// conditional save -> best-effort notification.

type IQuoteUseCase interface {
	Create(ctx context.Context, input CreateQuoteInput) (entities.Quote, error)
	GetByToken(ctx context.Context, rawToken string) (entities.Quote, error)
	Lookup(ctx context.Context, callerKey, email, displayID string) (string, error)
	Cancel(ctx context.Context, rawToken, reason, note string) (entities.Quote, error)
	SchedulePickup(ctx context.Context, rawToken string, input PickupInput) (entities.Quote, error)
	Reschedule(ctx context.Context, rawToken string, input RescheduleInput) (entities.Quote, error)
	UpdateContact(ctx context.Context, rawToken string, input ContactInput) (entities.Quote, error)
	Approve(ctx context.Context, adminID, quoteID string) (entities.Quote, error)
	Complete(ctx context.Context, adminID, quoteID, note string) (entities.Quote, error)
	AdjustPrice(ctx context.Context, adminID, quoteID, key string, amount int64, note string) (entities.Quote, error)
	GetByID(ctx context.Context, quoteID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.INotifier
	limiter  interfaces.IRateLimiter

	// now is swappable in tests; guards are time-dependent.
	now func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier, limiter interfaces.IRateLimiter) *QuoteUseCase {
	return &QuoteUseCase{
		repo:     repo,
		notifier: notifier,
		limiter:  limiter,
		now:      time.Now,
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, input CreateQuoteInput) (entities.Quote, error) {
	input.Customer.Name = strings.TrimSpace(input.Customer.Name)
	input.Customer.Email = strings.TrimSpace(strings.ToLower(input.Customer.Email))
	input.Customer.Phone = strings.TrimSpace(input.Customer.Phone)
	if input.Customer.Name == "" || !emailPattern.MatchString(input.Customer.Email) || !validPhone(input.Customer.Phone) {
		return entities.Quote{}, ErrInvalidCustomer
	}
	if strings.TrimSpace(input.Vehicle.Make) == "" || strings.TrimSpace(input.Vehicle.Model) == "" || input.Vehicle.Year <= 0 {
		return entities.Quote{}, ErrInvalidVehicle
	}
	if input.BasePrice <= 0 {
		return entities.Quote{}, ErrInvalidBasePrice
	}

	accessToken, err := u.issueToken(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		DisplayID:   newDisplayID(),
		AccessToken: accessToken,
		Customer:    input.Customer,
		Vehicle:     input.Vehicle,
		Status:      entities.QuoteStatusPending,
		ExpiresAt:   now.Add(entities.QuoteTTL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.SetBasePrice(input.BasePrice)
	for key, amount := range input.Adjustments {
		key = strings.TrimSpace(key)
		if key == "" {
			return entities.Quote{}, ErrInvalidAdjustment
		}
		q.SetAdjustment(key, amount)
	}
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionCreated,
		Actor:     entities.CustomerActor(),
		Timestamp: now,
		Detail: map[string]string{
			"base_price":  strconv.FormatInt(q.BasePrice, 10),
			"final_price": strconv.FormatInt(q.FinalPrice, 10),
		},
	})

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed display_id=%s err=%v", q.DisplayID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s display_id=%s final_price=%d", created.ID, created.DisplayID, created.FinalPrice)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyQuoteCreated,
		QuoteID:       created.ID,
		DisplayID:     created.DisplayID,
		CustomerEmail: created.Customer.Email,
		Data: map[string]string{
			"access_token": created.AccessToken,
			"final_price":  strconv.FormatInt(created.FinalPrice, 10),
		},
	})
	return created, nil
}

// issueToken generates a capability token and checks it against stored
// tokens before use. Collisions are astronomically unlikely but cheap
// to rule out.
func (u *QuoteUseCase) issueToken(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxTokenIssueAttempts; attempt++ {
		t, err := token.New()
		if err != nil {
			return "", err
		}
		existing, err := u.repo.GetByToken(ctx, t)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return t, nil
		}
		log.Printf("[quote][usecase] access token collision, retrying attempt=%d", attempt+1)
	}
	return "", fmt.Errorf("could not issue a unique access token after %d attempts", maxTokenIssueAttempts)
}

func (u *QuoteUseCase) GetByToken(ctx context.Context, rawToken string) (entities.Quote, error) {
	q, err := u.loadByToken(ctx, rawToken)
	if err != nil {
		return entities.Quote{}, err
	}
	// Reads report lazy expiry; they never error on it.
	q.Status = q.EffectiveStatus(u.now())
	return q, nil
}

func (u *QuoteUseCase) Lookup(ctx context.Context, callerKey, email, displayID string) (string, error) {
	if u.limiter != nil {
		allowed, err := u.limiter.Allow(ctx, callerKey)
		if err != nil {
			// Rate limiter outage fails open; losing throttling beats
			// losing the recovery flow.
			log.Printf("[quote][usecase] rate limiter failed key=%s err=%v", callerKey, err)
		} else if !allowed {
			return "", ErrRateLimited
		}
	}

	email = strings.TrimSpace(strings.ToLower(email))
	displayID = strings.ToUpper(strings.TrimSpace(displayID))
	if email == "" || displayID == "" {
		return "", ErrInvalidLookupInput
	}

	q, err := u.repo.GetByDisplayID(ctx, displayID)
	if err != nil {
		return "", err
	}
	// A wrong display id and a wrong email are indistinguishable to the
	// caller.
	if q.ID == "" || !strings.EqualFold(q.Customer.Email, email) {
		return "", ErrQuoteNotFound
	}
	return q.AccessToken, nil
}

func (u *QuoteUseCase) Cancel(ctx context.Context, rawToken, reason, note string) (entities.Quote, error) {
	reason = strings.TrimSpace(reason)
	if !entities.IsValidCancelReason(reason) {
		return entities.Quote{}, ErrInvalidCancelReason
	}

	q, err := u.loadByToken(ctx, rawToken)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if !q.CanCancel(now) {
		return entities.Quote{}, ErrStateConflict
	}

	expected := q.Status
	q.Status = entities.QuoteStatusCustomerCancelled
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionCancelled,
		Actor:     entities.CustomerActor(),
		Reason:    reason,
		Note:      strings.TrimSpace(note),
		Timestamp: now,
		Detail:    map[string]string{"previous_status": string(expected)},
	})

	saved, err := u.saveIfStatus(ctx, q, expected)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] cancelled quote_id=%s reason=%s", saved.ID, reason)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyQuoteCancelled,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
		Data:          map[string]string{"reason": reason},
	})
	return saved, nil
}

func (u *QuoteUseCase) SchedulePickup(ctx context.Context, rawToken string, input PickupInput) (entities.Quote, error) {
	input.Address = strings.TrimSpace(input.Address)
	input.ContactName = strings.TrimSpace(input.ContactName)
	input.ContactPhone = strings.TrimSpace(input.ContactPhone)
	if input.Address == "" || input.ContactName == "" || !validPhone(input.ContactPhone) || !entities.IsValidPickupWindow(input.Window) {
		return entities.Quote{}, ErrInvalidPickupDetails
	}

	q, err := u.loadByToken(ctx, rawToken)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if q.Status != entities.QuoteStatusPending && q.Status != entities.QuoteStatusAccepted {
		return entities.Quote{}, ErrStateConflict
	}
	// First schedule: any date after today, at most 30 days out.
	if !dateWithin(input.Date, now, 0) {
		return entities.Quote{}, ErrInvalidPickupDate
	}

	expected := q.Status
	q.Status = entities.QuoteStatusPickupScheduled
	q.Pickup = &entities.Pickup{
		Date:         input.Date,
		Window:       input.Window,
		Address:      input.Address,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
	}
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionPickupScheduled,
		Actor:     entities.CustomerActor(),
		Timestamp: now,
		Detail: map[string]string{
			"date":   input.Date.Format("2006-01-02"),
			"window": input.Window,
		},
	})

	saved, err := u.saveIfStatus(ctx, q, expected)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] pickup scheduled quote_id=%s date=%s window=%s", saved.ID, input.Date.Format("2006-01-02"), input.Window)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyPickupScheduled,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
		Data: map[string]string{
			"date":   input.Date.Format("2006-01-02"),
			"window": input.Window,
		},
	})
	return saved, nil
}

func (u *QuoteUseCase) Reschedule(ctx context.Context, rawToken string, input RescheduleInput) (entities.Quote, error) {
	if !entities.IsValidPickupWindow(input.Window) {
		return entities.Quote{}, ErrInvalidPickupDetails
	}

	q, err := u.loadByToken(ctx, rawToken)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if !q.CanReschedule(now) {
		return entities.Quote{}, ErrStateConflict
	}
	// Reschedules need a day of notice: after tomorrow, at most 30 days out.
	if !dateWithin(input.Date, now, 1) {
		return entities.Quote{}, ErrInvalidPickupDate
	}

	// Snapshot the pickup being replaced so the full history stays
	// reconstructible by walking the audit log.
	prev := *q.Pickup
	q.Pickup.Date = input.Date
	q.Pickup.Window = input.Window
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionRescheduled,
		Actor:     entities.CustomerActor(),
		Reason:    strings.TrimSpace(input.Reason),
		Note:      strings.TrimSpace(input.Note),
		Timestamp: now,
		Detail: map[string]string{
			"previous_date":   prev.Date.Format("2006-01-02"),
			"previous_window": prev.Window,
			"date":            input.Date.Format("2006-01-02"),
			"window":          input.Window,
		},
	})

	saved, err := u.saveIfStatus(ctx, q, entities.QuoteStatusPickupScheduled)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] pickup rescheduled quote_id=%s date=%s window=%s", saved.ID, input.Date.Format("2006-01-02"), input.Window)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyPickupChanged,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
		Data: map[string]string{
			"date":            input.Date.Format("2006-01-02"),
			"window":          input.Window,
			"previous_date":   prev.Date.Format("2006-01-02"),
			"previous_window": prev.Window,
		},
	})
	return saved, nil
}

func (u *QuoteUseCase) UpdateContact(ctx context.Context, rawToken string, input ContactInput) (entities.Quote, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" && input.Email == "" && input.Phone == "" {
		return entities.Quote{}, ErrInvalidContact
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		return entities.Quote{}, ErrInvalidContact
	}
	if input.Phone != "" && !validPhone(input.Phone) {
		return entities.Quote{}, ErrInvalidContact
	}

	q, err := u.loadByToken(ctx, rawToken)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrStateConflict
	}

	detail := map[string]string{}
	expected := q.Status
	if input.Name != "" && input.Name != q.Customer.Name {
		detail["previous_name"] = q.Customer.Name
		q.Customer.Name = input.Name
	}
	if input.Email != "" && input.Email != q.Customer.Email {
		detail["previous_email"] = q.Customer.Email
		q.Customer.Email = input.Email
	}
	if input.Phone != "" && input.Phone != q.Customer.Phone {
		detail["previous_phone"] = q.Customer.Phone
		q.Customer.Phone = input.Phone
	}
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionContactUpdated,
		Actor:     entities.CustomerActor(),
		Timestamp: now,
		Detail:    detail,
	})

	saved, err := u.saveIfStatus(ctx, q, expected)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] contact updated quote_id=%s", saved.ID)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyContactUpdated,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
	})
	return saved, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, adminID, quoteID string) (entities.Quote, error) {
	q, err := u.loadForAdmin(ctx, adminID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrStateConflict
	}

	q.Status = entities.QuoteStatusAccepted
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionAccepted,
		Actor:     entities.AdminActor(adminID),
		Timestamp: now,
	})

	saved, err := u.saveIfStatus(ctx, q, entities.QuoteStatusPending)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] approved quote_id=%s admin_id=%s", saved.ID, adminID)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyQuoteAccepted,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
	})
	return saved, nil
}

func (u *QuoteUseCase) Complete(ctx context.Context, adminID, quoteID, note string) (entities.Quote, error) {
	q, err := u.loadForAdmin(ctx, adminID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if q.Status != entities.QuoteStatusPickupScheduled {
		return entities.Quote{}, ErrStateConflict
	}

	q.Status = entities.QuoteStatusCompleted
	q.CompletedAt = &now
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionCompleted,
		Actor:     entities.AdminActor(adminID),
		Note:      strings.TrimSpace(note),
		Timestamp: now,
		Detail:    map[string]string{"final_price": strconv.FormatInt(q.FinalPrice, 10)},
	})

	saved, err := u.saveIfStatus(ctx, q, entities.QuoteStatusPickupScheduled)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] completed quote_id=%s admin_id=%s", saved.ID, adminID)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyQuoteCompleted,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
	})
	return saved, nil
}

func (u *QuoteUseCase) AdjustPrice(ctx context.Context, adminID, quoteID, key string, amount int64, note string) (entities.Quote, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Quote{}, ErrInvalidAdjustment
	}

	q, err := u.loadForAdmin(ctx, adminID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrStateConflict
	}

	expected := q.Status
	previousFinal := q.FinalPrice
	q.SetAdjustment(key, amount)
	q.UpdatedAt = now
	q.AppendAudit(entities.AuditEntry{
		Kind:      entities.ActionPriceAdjusted,
		Actor:     entities.AdminActor(adminID),
		Note:      strings.TrimSpace(note),
		Timestamp: now,
		Detail: map[string]string{
			"key":                  key,
			"amount":               strconv.FormatInt(amount, 10),
			"previous_final_price": strconv.FormatInt(previousFinal, 10),
			"final_price":          strconv.FormatInt(q.FinalPrice, 10),
		},
	})

	saved, err := u.saveIfStatus(ctx, q, expected)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] price adjusted quote_id=%s key=%s amount=%d final_price=%d", saved.ID, key, amount, saved.FinalPrice)

	u.notify(ctx, entities.Notification{
		Kind:          entities.NotifyPriceAdjusted,
		QuoteID:       saved.ID,
		DisplayID:     saved.DisplayID,
		CustomerEmail: saved.Customer.Email,
		Data:          map[string]string{"final_price": strconv.FormatInt(saved.FinalPrice, 10)},
	})
	return saved, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q.Status = q.EffectiveStatus(u.now())
	return q, nil
}

// loadByToken is the only lookup path for unauthenticated callers.
// Format is checked before any store access.
func (u *QuoteUseCase) loadByToken(ctx context.Context, rawToken string) (entities.Quote, error) {
	t := token.Normalize(rawToken)
	if !token.ValidFormat(t) {
		return entities.Quote{}, ErrInvalidToken
	}
	q, err := u.repo.GetByToken(ctx, t)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) loadForAdmin(ctx context.Context, adminID, quoteID string) (entities.Quote, error) {
	if strings.TrimSpace(adminID) == "" {
		return entities.Quote{}, ErrUnauthorized
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) saveIfStatus(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error) {
	saved, err := u.repo.SaveIfStatus(ctx, q, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			log.Printf("[quote][usecase] conditional save lost race quote_id=%s expected=%s", q.ID, expected)
			return entities.Quote{}, ErrStateConflict
		}
		return entities.Quote{}, err
	}
	return saved, nil
}

func (u *QuoteUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		log.Printf("[quote][usecase] notification failed kind=%s quote_id=%s err=%v", n.Kind, n.QuoteID, err)
	}
}

// dateWithin checks a pickup date against the booking horizon: strictly
// after today+minDaysAhead, at most 30 days out. Dates compare at day
// granularity in UTC.
func dateWithin(date time.Time, now time.Time, minDaysAhead int) bool {
	day := func(t time.Time) time.Time {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	d := day(date)
	earliest := day(now).AddDate(0, 0, minDaysAhead)
	latest := day(now).AddDate(0, 0, 30)
	return d.After(earliest) && !d.After(latest)
}

func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}

func newDisplayID() string {
	return "Q-" + strings.ToUpper(uuid.NewString()[:8])
}
