package tensor3d

import (
	"fmt"
	"slices"

	"gorgonia.org/tensor"
)

// FromDenseは3次元の gorgonia tensor.Dense (Float32 または Float64) を変換する。
// データは常にコピーされる。
func FromDense(d *tensor.Dense) (General, error) {
	if d == nil {
		return General{}, fmt.Errorf("tensor3d.FromDense: tensor.Dense が nil です。")
	}
	shape := d.Shape()
	if len(shape) != 3 {
		return General{}, fmt.Errorf("tensor3d.FromDense: 3次元のテンソルが必要ですが、shape = %v です。", shape)
	}
	if d.IsView() {
		m, ok := d.Materialize().(*tensor.Dense)
		if !ok {
			return General{}, fmt.Errorf("tensor3d.FromDense: ビューを実体化できません。")
		}
		d = m
	}

	var data []float32
	switch d.Dtype() {
	case tensor.Float32:
		data = slices.Clone(d.Float32s())
	case tensor.Float64:
		f64 := d.Float64s()
		data = make([]float32, len(f64))
		for i, e := range f64 {
			data[i] = float32(e)
		}
	default:
		return General{}, fmt.Errorf("tensor3d.FromDense: 未対応のデータ型です。dtype = %v", d.Dtype())
	}
	return New(shape[0], shape[1], shape[2], data)
}

// ToDenseはデータをコピーして Float32 の tensor.Dense を返す。
func (g General) ToDense() *tensor.Dense {
	return tensor.New(
		tensor.WithShape(g.Batches, g.Joints, g.Dims),
		tensor.WithBacking(slices.Clone(g.Data)),
	)
}
