package entities

// FloorPrice is the minimum offer in currency units. No combination of
// condition penalties may push a final price below it.
const FloorPrice int64 = 300

// ComputeFinalPrice derives the offer from the base valuation plus the
// current value of every adjustment key, clamped to FloorPrice.
//
// The function is pure and total: any adjustment set, including nil,
// produces a defined result. Callers hold one value per key; re-setting
// a key replaces its prior value, it never accumulates.
func ComputeFinalPrice(basePrice int64, adjustments map[string]int64) int64 {
	total := basePrice
	for _, amount := range adjustments {
		total += amount
	}
	if total < FloorPrice {
		return FloorPrice
	}
	return total
}
