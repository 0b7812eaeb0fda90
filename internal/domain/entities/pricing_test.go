package entities

import "testing"

func TestComputeFinalPrice(t *testing.T) {
	cases := []struct {
		name        string
		basePrice   int64
		adjustments map[string]int64
		want        int64
	}{
		{name: "no adjustments", basePrice: 5000, adjustments: nil, want: 5000},
		{name: "empty adjustments", basePrice: 5000, adjustments: map[string]int64{}, want: 5000},
		{name: "two penalties", basePrice: 5000, adjustments: map[string]int64{"battery": -300, "title": -700}, want: 4000},
		{name: "clamped to floor", basePrice: 500, adjustments: map[string]int64{"engine": -1000}, want: 300},
		{name: "positive adjustment", basePrice: 5000, adjustments: map[string]int64{"premium_trim": 250}, want: 5250},
		{name: "base below floor", basePrice: 100, adjustments: nil, want: 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeFinalPrice(tc.basePrice, tc.adjustments)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestComputeFinalPrice_FloorHolds(t *testing.T) {
	bases := []int64{0, 1, 300, 500, 5000, 100000}
	adjustmentSets := []map[string]int64{
		nil,
		{"a": -1},
		{"a": -100000},
		{"a": -100000, "b": -100000, "c": 50},
	}

	for _, base := range bases {
		for _, adj := range adjustmentSets {
			if got := ComputeFinalPrice(base, adj); got < FloorPrice {
				t.Fatalf("price %d below floor for base=%d adjustments=%v", got, base, adj)
			}
		}
	}
}

func TestQuote_SetAdjustmentReplacesKey(t *testing.T) {
	q := Quote{BasePrice: 5000}
	q.SetBasePrice(5000)

	// Writing the same key repeatedly keeps only the last value.
	q.SetAdjustment("battery", -300)
	q.SetAdjustment("battery", -300)
	q.SetAdjustment("battery", -150)
	q.SetAdjustment("title", -700)

	if q.FinalPrice != 4150 {
		t.Fatalf("expected 4150, got %d", q.FinalPrice)
	}
	if want := ComputeFinalPrice(q.BasePrice, map[string]int64{"battery": -150, "title": -700}); q.FinalPrice != want {
		t.Fatalf("sequence result %d differs from last-value-per-key result %d", q.FinalPrice, want)
	}
}

func TestQuote_SetBasePriceRecomputes(t *testing.T) {
	q := Quote{}
	q.SetBasePrice(5000)
	q.SetAdjustment("tires", -200)
	q.SetBasePrice(4000)

	if q.FinalPrice != 3800 {
		t.Fatalf("expected 3800, got %d", q.FinalPrice)
	}
}
