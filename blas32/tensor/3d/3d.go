// Package tensor3d はキーポイント座標用の (Batches, Joints, Dims) 形状の
// float32 テンソルを提供する。データは行優先で連続に格納される。
package tensor3d

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/sw965/crowpose/blas32/vector"
	crand "github.com/sw965/crowpose/math/rand"
	"gonum.org/v1/gonum/blas/blas32"
)

type Shape struct {
	Batches int
	Joints  int
	Dims    int
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Batches, s.Joints, s.Dims)
}

func (s Shape) N() int {
	return s.Batches * s.Joints * s.Dims
}

type General struct {
	Batches     int
	Joints      int
	Dims        int
	BatchStride int
	JointStride int
	Data        []float32
}

func NewZeros(batches, joints, dims int) General {
	jointStride := dims
	batchStride := joints * jointStride
	n := batches * batchStride
	return General{
		Batches:     batches,
		Joints:      joints,
		Dims:        dims,
		BatchStride: batchStride,
		JointStride: jointStride,
		Data:        make([]float32, n),
	}
}

func NewZerosLike(g General) General {
	return NewZeros(g.Batches, g.Joints, g.Dims)
}

func NewOnes(batches, joints, dims int) General {
	g := NewZeros(batches, joints, dims)
	for i := range g.Data {
		g.Data[i] = 1.0
	}
	return g
}

func NewOnesLike(g General) General {
	return NewOnes(g.Batches, g.Joints, g.Dims)
}

func NewRademacher(batches, joints, dims int, rng *rand.Rand) General {
	g := NewZeros(batches, joints, dims)
	for i := range g.Data {
		g.Data[i] = crand.Rademacher(rng)
	}
	return g
}

func NewUniform(batches, joints, dims int, min, max float32, rng *rand.Rand) General {
	g := NewZeros(batches, joints, dims)
	for i := range g.Data {
		g.Data[i] = crand.Uniform(min, max, rng)
	}
	return g
}

// Newはdataをそのまま(コピーせずに)バッキング配列として使う。
func New(batches, joints, dims int, data []float32) (General, error) {
	if batches < 0 || joints < 0 || dims < 0 {
		return General{}, fmt.Errorf("tensor3d.Newの形状に負の値が含まれています。shape = (%d, %d, %d)", batches, joints, dims)
	}
	g := NewZeros(batches, joints, dims)
	if len(data) != g.N() {
		return General{}, fmt.Errorf(
			"tensor3d.Newの要素数が一致しません。shape = %v, 期待される要素数: %d, 実際の要素数: %d",
			g.Shape(), g.N(), len(data),
		)
	}
	g.Data = data
	return g, nil
}

func (g General) N() int {
	return g.Batches * g.Joints * g.Dims
}

func (g General) Shape() Shape {
	return Shape{Batches: g.Batches, Joints: g.Joints, Dims: g.Dims}
}

func (g General) SameShape(other General) bool {
	return g.Shape() == other.Shape()
}

func (g General) Clone() General {
	vec := vector.Clone(g.ToVector())
	return General{
		Batches:     g.Batches,
		Joints:      g.Joints,
		Dims:        g.Dims,
		BatchStride: g.BatchStride,
		JointStride: g.JointStride,
		Data:        vec.Data,
	}
}

func (g General) At(batch, joint, dim int) int {
	return batch*g.BatchStride + joint*g.JointStride + dim
}

// ToVectorはデータを共有するblas32.Vectorを返す。
func (g General) ToVector() blas32.Vector {
	return blas32.Vector{
		N:    g.N(),
		Inc:  1,
		Data: g.Data,
	}
}

func (g General) Flatten() blas32.Vector {
	return vector.Clone(g.ToVector())
}

func (g General) Axpy(alpha float32, x General) error {
	if !g.SameShape(x) {
		return fmt.Errorf("tensor3d.General の形状が一致しないため、Axpyできません。%v != %v", g.Shape(), x.Shape())
	}
	blas32.Axpy(alpha, x.ToVector(), g.ToVector())
	return nil
}

func (g General) Scal(alpha float32) {
	blas32.Scal(alpha, g.ToVector())
}

func (g General) Sub(other General) (General, error) {
	y := g.Clone()
	if err := y.Axpy(-1.0, other); err != nil {
		return General{}, err
	}
	return y, nil
}

func (g General) Hadamard(other General) (General, error) {
	if !g.SameShape(other) {
		return General{}, fmt.Errorf("tensor3d.General の形状が一致しないため、要素積を計算できません。%v != %v", g.Shape(), other.Shape())
	}
	y := NewZerosLike(g)
	for i := range y.Data {
		y.Data[i] = g.Data[i] * other.Data[i]
	}
	return y, nil
}

func (g General) MapFunc(f func(float32) float32) General {
	y := NewZerosLike(g)
	for i, e := range g.Data {
		y.Data[i] = f(e)
	}
	return y
}

func (g General) Abs() General {
	return g.MapFunc(math32.Abs)
}

// SumByBatchは各バッチについて関節と座標の次元に渡る総和を返す。
func (g General) SumByBatch() []float32 {
	y := make([]float32, g.Batches)
	for b := range y {
		start := g.At(b, 0, 0)
		var sum float32
		for _, e := range g.Data[start : start+g.BatchStride] {
			sum += e
		}
		y[b] = sum
	}
	return y
}
