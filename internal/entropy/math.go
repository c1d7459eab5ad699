package entropy

import "math"

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange rescales value from [inMin, inMax] into [outMin, outMax].
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Round(value*m) / m
}

// Percentage returns value as a percentage of total, 0 when total is 0.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}

// Interpolate eases between start and end by progress clamped to [0, 1].
// A nil easing function means linear.
func Interpolate(start, end, progress float64, easing func(float64) float64) float64 {
	t := Clamp(progress, 0, 1)
	if easing != nil {
		t = easing(t)
	}
	return Lerp(start, end, t)
}
