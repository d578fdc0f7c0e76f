package quiz

import "math/rand"

// Shuffle returns a new slice with the same elements as items in uniformly
// random order. The input is never mutated. Uses a reverse Fisher-Yates scan:
// for each index i from the end down to 1, swap with a random index in [0, i].
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
