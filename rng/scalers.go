package rng

import "math"

// Each scaler consumes exactly one Next call and maps the raw word onto the
// unit interval. The CO variants exclude 1.0 and keep the step uniform at
// the cost of entropy (24 or 53 bits); the CC variants include both
// endpoints but step unevenly near the boundary. The word-level helpers
// below are the whole mapping; the methods only feed them.

func scaleFloatCO(word uint64) float32 {
	return float32(word>>40) / (1 << 24)
}

func scaleFloatCC(word uint64) float32 {
	return float32(word>>32) / float32(math.MaxUint32)
}

func scaleDoubleCO(word uint64) float64 {
	return float64(word>>11) / (1 << 53)
}

func scaleDoubleCC(word uint64) float64 {
	return float64(word) / float64(math.MaxUint64)
}

// FloatCO returns a random float32 in the range [0.0, 1.0).
func (state *Xoshiro256SSState) FloatCO() float32 {
	return scaleFloatCO(state.Next())
}

// FloatCC returns a random float32 in the range [0.0, 1.0], endpoints
// included.
func (state *Xoshiro256SSState) FloatCC() float32 {
	return scaleFloatCC(state.Next())
}

// DoubleCO returns a random float64 in the range [0.0, 1.0).
func (state *Xoshiro256SSState) DoubleCO() float64 {
	return scaleDoubleCO(state.Next())
}

// DoubleCC returns a random float64 in the range [0.0, 1.0], endpoints
// included.
func (state *Xoshiro256SSState) DoubleCC() float64 {
	return scaleDoubleCC(state.Next())
}
