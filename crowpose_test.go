package crowpose_test

import (
	"slices"
	"testing"

	"github.com/sw965/crowpose"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestNumericalGradient(t *testing.T) {
	xs := []float64{1.0, -2.0, 0.5}
	// f = x0² + 3·x1 + x0·x2
	f := func(xs []float64) float64 {
		return xs[0]*xs[0] + 3*xs[1] + xs[0]*xs[2]
	}
	grad := crowpose.NumericalGradient(xs, 1e-4, f)
	want := []float64{2*1.0 + 0.5, 3.0, 1.0}
	for i := range want {
		if !scalar.EqualWithinAbs(grad[i], want[i], 1e-6) {
			t.Errorf("grad[%d] = %v, want %v", i, grad[i], want[i])
		}
	}
	if !slices.Equal(xs, []float64{1.0, -2.0, 0.5}) {
		t.Errorf("xs was not restored: %v", xs)
	}
}
