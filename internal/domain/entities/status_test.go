package entities

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to QuoteStatus }{
		{QuoteStatusPending, QuoteStatusAccepted},
		{QuoteStatusPending, QuoteStatusPickupScheduled},
		{QuoteStatusPending, QuoteStatusCustomerCancelled},
		{QuoteStatusAccepted, QuoteStatusPickupScheduled},
		{QuoteStatusAccepted, QuoteStatusCustomerCancelled},
		{QuoteStatusPickupScheduled, QuoteStatusPickupScheduled},
		{QuoteStatusPickupScheduled, QuoteStatusCustomerCancelled},
		{QuoteStatusPickupScheduled, QuoteStatusCompleted},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Fatalf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to QuoteStatus }{
		{QuoteStatusPending, QuoteStatusCompleted},
		{QuoteStatusAccepted, QuoteStatusAccepted},
		{QuoteStatusCompleted, QuoteStatusPending},
		{QuoteStatusCustomerCancelled, QuoteStatusAccepted},
		{QuoteStatusExpired, QuoteStatusPending},
		{QuoteStatusCompleted, QuoteStatusExpired},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Fatalf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestQuoteStatus_IsTerminal(t *testing.T) {
	terminal := []QuoteStatus{QuoteStatusCustomerCancelled, QuoteStatusCompleted, QuoteStatusExpired}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	active := []QuoteStatus{QuoteStatusPending, QuoteStatusAccepted, QuoteStatusPickupScheduled}
	for _, s := range active {
		if s.IsTerminal() {
			t.Fatalf("expected %s not to be terminal", s)
		}
	}
}

func TestQuote_EffectiveStatusLazyExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("active quote before deadline", func(t *testing.T) {
		q := Quote{Status: QuoteStatusAccepted, ExpiresAt: now.Add(time.Hour)}
		if got := q.EffectiveStatus(now); got != QuoteStatusAccepted {
			t.Fatalf("expected accepted, got %s", got)
		}
	})

	t.Run("active quote past deadline reads expired", func(t *testing.T) {
		q := Quote{Status: QuoteStatusPickupScheduled, ExpiresAt: now.Add(-time.Minute)}
		if got := q.EffectiveStatus(now); got != QuoteStatusExpired {
			t.Fatalf("expected expired, got %s", got)
		}
	})

	t.Run("terminal status is never rewritten", func(t *testing.T) {
		q := Quote{Status: QuoteStatusCompleted, ExpiresAt: now.Add(-time.Hour)}
		if got := q.EffectiveStatus(now); got != QuoteStatusCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
	})
}

func TestQuote_CanCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	for _, s := range []QuoteStatus{QuoteStatusPending, QuoteStatusAccepted, QuoteStatusPickupScheduled} {
		q := Quote{Status: s, ExpiresAt: future}
		if !q.CanCancel(now) {
			t.Fatalf("expected %s quote to be cancellable", s)
		}
	}
	for _, s := range []QuoteStatus{QuoteStatusCustomerCancelled, QuoteStatusCompleted, QuoteStatusExpired} {
		q := Quote{Status: s, ExpiresAt: future}
		if q.CanCancel(now) {
			t.Fatalf("expected %s quote not to be cancellable", s)
		}
	}

	// Stored status still active but deadline passed.
	q := Quote{Status: QuoteStatusPending, ExpiresAt: now.Add(-time.Second)}
	if q.CanCancel(now) {
		t.Fatalf("expected expired-but-not-updated quote not to be cancellable")
	}
}

func TestQuote_CanReschedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	q := Quote{Status: QuoteStatusPickupScheduled, ExpiresAt: future}
	if !q.CanReschedule(now) {
		t.Fatalf("expected pickup-scheduled quote to be reschedulable")
	}

	for _, s := range []QuoteStatus{QuoteStatusPending, QuoteStatusAccepted, QuoteStatusCompleted, QuoteStatusCustomerCancelled, QuoteStatusExpired} {
		q := Quote{Status: s, ExpiresAt: future}
		if q.CanReschedule(now) {
			t.Fatalf("expected %s quote not to be reschedulable", s)
		}
	}

	expired := Quote{Status: QuoteStatusPickupScheduled, ExpiresAt: now.Add(-time.Second)}
	if expired.CanReschedule(now) {
		t.Fatalf("expected expired quote not to be reschedulable")
	}
}

func TestQuote_AppendAudit(t *testing.T) {
	q := Quote{}
	q.AppendAudit(AuditEntry{Kind: ActionCreated})
	q.AppendAudit(AuditEntry{Kind: ActionCancelled})

	if len(q.AuditLog) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(q.AuditLog))
	}
	if q.AuditLog[0].Kind != ActionCreated || q.AuditLog[1].Kind != ActionCancelled {
		t.Fatalf("unexpected order: %+v", q.AuditLog)
	}
}
