package random

import "math/rand"

// Randomize returns a shuffled copy of items. The input slice is left untouched.
func Randomize[T any](items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	for i := len(result) - 1; i > 0; i -= 1 {
		j := rand.Intn(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}

func Pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}
