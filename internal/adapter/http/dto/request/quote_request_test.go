package request

import (
	"errors"
	"testing"
)

func TestCreateQuoteRequest_ResolveAdjustments(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		r := CreateQuoteRequest{}
		if got := r.ResolveAdjustments(); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("blank keys are dropped", func(t *testing.T) {
		r := CreateQuoteRequest{Conditions: []ConditionAnswerRequest{
			{Key: "  ", Amount: -100},
		}}
		if got := r.ResolveAdjustments(); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("repeated key keeps the last answer", func(t *testing.T) {
		r := CreateQuoteRequest{Conditions: []ConditionAnswerRequest{
			{Key: "battery", Amount: -300},
			{Key: "tires", Amount: -450},
			{Key: "battery", Amount: -550},
		}}
		got := r.ResolveAdjustments()
		if len(got) != 2 {
			t.Fatalf("expected 2 adjustments, got %v", got)
		}
		if got["battery"] != -550 {
			t.Fatalf("expected last answer to win, got %d", got["battery"])
		}
		if got["tires"] != -450 {
			t.Fatalf("expected tires=-450, got %d", got["tires"])
		}
	})
}

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	r := CreateQuoteRequest{
		Customer:  CustomerRequest{Name: "Dana Reyes", Email: "dana@example.com", Phone: "+1 555 010 2030"},
		Vehicle:   VehicleRequest{Year: 2019, Make: " Toyota ", Model: " Corolla ", VIN: " jt2ae91a8j3551983 "},
		BasePrice: 5000,
		Conditions: []ConditionAnswerRequest{
			{Key: "battery", Amount: -300},
		},
	}
	input := r.ToInput()
	if input.Vehicle.Make != "Toyota" || input.Vehicle.Model != "Corolla" {
		t.Fatalf("expected trimmed vehicle fields, got %+v", input.Vehicle)
	}
	if input.Vehicle.VIN != "JT2AE91A8J3551983" {
		t.Fatalf("expected uppercased VIN, got %q", input.Vehicle.VIN)
	}
	if input.BasePrice != 5000 || input.Adjustments["battery"] != -300 {
		t.Fatalf("unexpected input: %+v", input)
	}
}

func TestSchedulePickupRequest_ToInput(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		r := SchedulePickupRequest{
			Date:         " 2026-04-05 ",
			Window:       " morning ",
			Address:      "12 Oak St",
			ContactName:  "Dana Reyes",
			ContactPhone: "+1 555 010 2030",
		}
		input, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if input.Date.Format("2006-01-02") != "2026-04-05" {
			t.Fatalf("unexpected date: %v", input.Date)
		}
		if input.Window != "morning" {
			t.Fatalf("expected trimmed window, got %q", input.Window)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		r := SchedulePickupRequest{Date: "05/04/2026", Window: "morning"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestRescheduleRequest_ToInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := RescheduleRequest{Date: "2026-04-08", Window: "evening", Reason: "work conflict"}
		input, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if input.Window != "evening" || input.Reason != "work conflict" {
			t.Fatalf("unexpected input: %+v", input)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		r := RescheduleRequest{Date: "tomorrow", Window: "evening"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
