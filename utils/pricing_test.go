package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestApplyPercentToPrice(t *testing.T) {
	assert.Equal(t, 80.0, ApplyPercentToPrice(100, 20))
	assert.Equal(t, 0.0, ApplyPercentToPrice(100, 100))
	assert.Equal(t, 100.0, ApplyPercentToPrice(100, 0))
	assert.Equal(t, 66.66, ApplyPercentToPrice(99.99, 33.33))
}

func TestApplyAmountToPrice(t *testing.T) {
	assert.Equal(t, 75.0, ApplyAmountToPrice(100, 25))
	assert.Equal(t, 100.0, ApplyAmountToPrice(100, 0))

	// Discount larger than the base clamps to zero, never negative
	assert.Equal(t, 0.0, ApplyAmountToPrice(10, 25))
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, 80.0, DiscountedPrice(100, floatPtr(20), nil))
	assert.Equal(t, 75.0, DiscountedPrice(100, nil, floatPtr(25)))

	// No discount configured: membership-only campaign leaves price alone
	assert.Equal(t, 100.0, DiscountedPrice(100, nil, nil))

	// Zero-valued specs still resolve to the base price
	assert.Equal(t, 100.0, DiscountedPrice(100, floatPtr(0), nil))
	assert.Equal(t, 100.0, DiscountedPrice(100, nil, floatPtr(0)))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.56, RoundMoney(10.555))
	assert.Equal(t, 10.0, RoundMoney(10.0001))
}
