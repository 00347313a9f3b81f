package loss

import (
	tensor3d "github.com/sw965/crowpose/blas32/tensor/3d"
	"github.com/sw965/crowpose/mathx"
	omath "github.com/sw965/omw/math"
)

const SmoothL1Name = "SmoothL1Loss"

// SmoothL1は全要素のsmooth-L1距離の平均を関節数で割り、LossWeight倍した値を返す。
type SmoothL1 struct {
	useTargetWeight bool
	lossWeight      float32
}

func NewSmoothL1(useTargetWeight bool, lossWeight float32) SmoothL1 {
	return SmoothL1{useTargetWeight: useTargetWeight, lossWeight: lossWeight}
}

func (l SmoothL1) UseTargetWeight() bool {
	return l.useTargetWeight
}

func (l SmoothL1) LossWeight() float32 {
	return l.lossWeight
}

func (l SmoothL1) Func(output, target, weight tensor3d.General) (float32, error) {
	x, err := residual(SmoothL1Name, l.useTargetWeight, output, target, weight)
	if err != nil {
		return 0.0, err
	}
	mean := omath.Mean(x.MapFunc(mathx.SmoothL1).Data...)
	return mean / float32(output.Joints) * l.lossWeight, nil
}

func (l SmoothL1) Derivative(output, target, weight tensor3d.General) (tensor3d.General, error) {
	x, err := residual(SmoothL1Name, l.useTargetWeight, output, target, weight)
	if err != nil {
		return tensor3d.General{}, err
	}
	grad := x.MapFunc(mathx.SmoothL1Derivative)
	grad.Scal(l.lossWeight / float32(output.N()*output.Joints))
	return chainWeight(SmoothL1Name, l.useTargetWeight, grad, weight)
}
