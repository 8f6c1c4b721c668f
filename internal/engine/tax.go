package engine

// Auction house claim tax: 1% below one million coins, 2% from one million
// up (boundary inclusive). No rounding here; callers round final results.
const taxTierBoundary = 1_000_000

// NetProceeds returns what the seller keeps after claim tax on a gross sale.
// gross must be non-negative.
func NetProceeds(gross float64) float64 {
	if gross >= taxTierBoundary {
		return gross * 0.98
	}
	return gross * 0.99
}

// Tax returns the claim tax taken on a gross sale.
func Tax(gross float64) float64 {
	return gross - NetProceeds(gross)
}
