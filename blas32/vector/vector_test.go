package vector_test

import (
	"testing"

	"github.com/sw965/crowpose/blas32/vector"
	orand "github.com/sw965/omw/math/rand"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestClone(t *testing.T) {
	vec := blas32.Vector{N: 3, Inc: 1, Data: []float32{0.1, 0.2, 0.3}}
	c := vector.Clone(vec)
	c.Data[0] = 9.0
	if vec.Data[0] != 0.1 {
		t.Errorf("Clone shares backing data with the source")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := blas32.Vector{N: 4, Inc: 1, Data: []float32{1, 2, 3, 4}}
	b := blas32.Vector{N: 4, Inc: 1, Data: []float32{1, -1, 3.5, 4}}
	if got := vector.MaxAbsDiff(a, b); got != 3 {
		t.Errorf("MaxAbsDiff = %v, want 3", got)
	}
	if got := vector.MaxAbsDiff(a, a); got != 0 {
		t.Errorf("MaxAbsDiff(a, a) = %v, want 0", got)
	}
}

func TestNewRademacher(t *testing.T) {
	rng := orand.NewMt19937()
	vec := vector.NewRademacher(16, rng)
	if vec.N != 16 || len(vec.Data) != 16 {
		t.Fatalf("unexpected length %d", vec.N)
	}
	for _, e := range vec.Data {
		if e != 1 && e != -1 {
			t.Errorf("non Rademacher element %v", e)
		}
	}
}
