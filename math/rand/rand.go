package rand

import (
	"math/rand"
	omwrand "github.com/sw965/omw/math/rand"
)

func Rademacher(rng *rand.Rand) float32 {
	if omwrand.Bool(rng) {
		return 1.0
	}
	return -1.0
}

// Uniformは[min, max)の一様乱数を返す。
func Uniform(min, max float32, rng *rand.Rand) float32 {
	return min + rng.Float32()*(max-min)
}
