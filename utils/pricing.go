package utils

import "math"

// RoundMoney rounds a price to two decimal places
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}

// ApplyPercentToPrice returns the price after a percentage discount
func ApplyPercentToPrice(base float64, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return RoundMoney(base)
	}
	discount := (base * discountPercent) / 100.0
	return RoundMoney(base - discount)
}

// ApplyAmountToPrice returns the price after a fixed-amount discount,
// clamped so it never goes below zero
func ApplyAmountToPrice(base float64, discountAmount float64) float64 {
	if discountAmount <= 0 {
		return RoundMoney(base)
	}
	price := base - discountAmount
	if price < 0 {
		price = 0
	}
	return RoundMoney(price)
}

// DiscountedPrice computes the effective price for a baseline under a
// campaign's discount spec. A spec with neither field set leaves the
// baseline unchanged (display-only campaign).
func DiscountedPrice(base float64, discountPercent, discountAmount *float64) float64 {
	switch {
	case discountPercent != nil:
		return ApplyPercentToPrice(base, *discountPercent)
	case discountAmount != nil:
		return ApplyAmountToPrice(base, *discountAmount)
	default:
		return RoundMoney(base)
	}
}
