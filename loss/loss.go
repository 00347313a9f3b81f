// Package loss はキーポイント回帰用の損失関数 (SmoothL1, Wing) を提供する。
//
// 入力はいずれも (N, K, D) 形状の tensor3d.General で、N はバッチサイズ、
// K は関節数、D は座標の次元数 (通常は2)。
package loss

import (
	"fmt"

	tensor3d "github.com/sw965/crowpose/blas32/tensor/3d"
)

// Lossは出力と教師の誤差をスカラーに集約する損失関数。
// Derivativeは出力に関する勾配を出力と同じ形状で返す。
type Loss interface {
	Func(output, target, weight tensor3d.General) (float32, error)
	Derivative(output, target, weight tensor3d.General) (tensor3d.General, error)
}

// residualは output - target を返す。useTargetWeight が true の場合は、
// 差を取る前に output と target の双方に weight を要素ごとに掛ける。
func residual(name string, useTargetWeight bool, output, target, weight tensor3d.General) (tensor3d.General, error) {
	if !output.SameShape(target) {
		return tensor3d.General{}, fmt.Errorf("%s: output と target の形状が一致しません。%v != %v", name, output.Shape(), target.Shape())
	}
	if output.N() == 0 {
		return tensor3d.General{}, fmt.Errorf("%s: 要素数が0のテンソルの損失は計算できません。shape = %v", name, output.Shape())
	}

	if !useTargetWeight {
		return output.Sub(target)
	}

	if !output.SameShape(weight) {
		return tensor3d.General{}, fmt.Errorf("%s: output と target_weight の形状が一致しません。%v != %v", name, output.Shape(), weight.Shape())
	}
	wOutput, err := output.Hadamard(weight)
	if err != nil {
		return tensor3d.General{}, fmt.Errorf("%s: %w", name, err)
	}
	wTarget, err := target.Hadamard(weight)
	if err != nil {
		return tensor3d.General{}, fmt.Errorf("%s: %w", name, err)
	}
	return wOutput.Sub(wTarget)
}

// chainWeightは重み付きの場合に、(output*weight)に関する勾配をoutputに関する勾配に変換する。
func chainWeight(name string, useTargetWeight bool, grad, weight tensor3d.General) (tensor3d.General, error) {
	if !useTargetWeight {
		return grad, nil
	}
	y, err := grad.Hadamard(weight)
	if err != nil {
		return tensor3d.General{}, fmt.Errorf("%s: %w", name, err)
	}
	return y, nil
}
