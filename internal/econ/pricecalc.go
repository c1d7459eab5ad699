// Package econ implements the economic layer: market price formation,
// inventory-driven pricing, storage capacity, trade routes and market
// events.
package econ

import (
	"math"

	"github.com/talgya/epochs/internal/entropy"
)

// PriceCalculator derives market prices from supply, demand and
// stockpile levels using a logarithmic impact model.
type PriceCalculator struct{}

// NewPriceCalculator returns a PriceCalculator.
func NewPriceCalculator() *PriceCalculator {
	return &PriceCalculator{}
}

// Price computes the market price of a good. Each impact term is a
// fractional adjustment on the base price; the result is clamped to
// [0.1*base, 10*base].
func (c *PriceCalculator) Price(basePrice, supply, demand, stockpile float64) float64 {
	supplyImpact := 1.0
	if supply > 0 {
		supplyImpact = -0.5 * math.Log10(supply+1) * 0.5
	}

	demandImpact := -1.0
	if demand > 0 {
		demandImpact = 0.25 * math.Log10(demand+1)
	}

	stockpileImpact := 0.0
	if stockpile > 0 {
		stockpileImpact = -0.1 * math.Tanh(stockpile/100)
	}

	price := basePrice * (1 + supplyImpact + demandImpact + stockpileImpact)
	return entropy.Clamp(price, basePrice*0.1, basePrice*10)
}

// PriceAdjustment returns the fractional step that moves the current
// price toward the supply/demand-implied equilibrium ratio. A fifth of
// the gap is closed per call.
func (c *PriceCalculator) PriceAdjustment(currentPrice, basePrice, supply, demand float64) float64 {
	var expectedRatio float64
	switch {
	case supply <= 0:
		expectedRatio = 10
	case demand <= 0:
		expectedRatio = 0.1
	default:
		expectedRatio = entropy.Clamp(demand/supply, 0.5, 2)
	}
	return (expectedRatio - currentPrice/basePrice) * 0.2
}
