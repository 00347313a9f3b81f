package vector

import (
	"math/rand"
	"slices"

	"github.com/chewxy/math32"
	crand "github.com/sw965/crowpose/math/rand"
	omath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func NewRademacher(n int, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = crand.Rademacher(rng)
	}
	return vec
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:    vec.N,
		Inc:  vec.Inc,
		Data: slices.Clone(vec.Data),
	}
}

// MaxAbsDiffは二つのベクトルの要素ごとの差の絶対値の最大値を返す。
func MaxAbsDiff(a, b blas32.Vector) float32 {
	diff := Clone(b)
	blas32.Axpy(-1.0, a, diff)
	if diff.N == 0 {
		return 0.0
	}
	abs := make([]float32, diff.N)
	for i := range abs {
		abs[i] = math32.Abs(diff.Data[i*diff.Inc])
	}
	return omath.Max(abs...)
}
