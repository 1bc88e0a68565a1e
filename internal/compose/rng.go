package compose

import "math/rand"

// RandomIndex draws a uniform index in [0, n). When n > 1 and exclude is a
// valid index, exclude is never returned. It returns -1 when n <= 0.
func RandomIndex(rng *rand.Rand, n, exclude int) int {
	if n <= 0 {
		return -1
	}
	if n == 1 || exclude < 0 || exclude >= n {
		return rng.Intn(n)
	}
	i := rng.Intn(n - 1)
	if i >= exclude {
		i++
	}
	return i
}
