package glove

import (
	"math/rand/v2"
)

// AddNoise perturbs every channel with a uniform random offset in
// [-level, level] and clamps the result to the valid raw range. It never
// fails; clamping guarantees the output range for any input.
func AddNoise(r Reading, level int) Reading {
	var out Reading
	for i, v := range r {
		offset := (rand.Float64()*2 - 1) * float64(level)
		out[i] = clampRaw(int(float64(v) + offset))
	}
	return out
}

func clampRaw(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxRaw {
		return MaxRaw
	}
	return v
}
