package main

import "math"

// Ease maps a progress value in [0, 1] to an eased value in [0, 1].
// It uses the half period of a cosine between π and 2π, so the curve starts
// slowly, speeds up in the middle and slows down again at the end.
// Ease(0) = 0, Ease(0.5) = 0.5, Ease(1) = 1.
func Ease(p float64) float64 {
	return math.Cos((p+1)*math.Pi)/2 + 0.5
}
