package econ

import "github.com/talgya/epochs/internal/entropy"

// InventoryRatio returns inventory/capacity clamped to [0, 1], or 0
// when capacity is non-positive.
func InventoryRatio(inventory, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return entropy.Clamp(inventory/capacity, 0, 1)
}

// InventoryMultiplier maps an inventory ratio to a price multiplier via
// a piecewise-linear scarcity curve. Empty storage commands up to 5x the
// base price, a half-full store is neutral, and a glut bottoms out at
// 0.2x. A non-positive capacity always yields exactly 1.0.
func InventoryMultiplier(inventory, capacity float64) float64 {
	if capacity <= 0 {
		return 1.0
	}
	r := entropy.Clamp(inventory/capacity, 0, 1)
	switch {
	case r <= 0.2:
		return 1.5 + (0.2-r)/0.2*3.5
	case r <= 0.5:
		return 1 + (0.5-r)/0.3*0.5
	case r <= 0.8:
		return 1 - (r-0.5)/0.3*0.33
	default:
		return 0.67 - (r-0.8)/0.2*0.47
	}
}
