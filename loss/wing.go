package loss

import (
	"fmt"

	tensor3d "github.com/sw965/crowpose/blas32/tensor/3d"
	"github.com/sw965/crowpose/mathx"
	omath "github.com/sw965/omw/math"
)

const (
	WingName = "WingLoss"

	DefaultOmega   float32 = 10.0
	DefaultEpsilon float32 = 2.0
)

// Wingは Feng et al. "Wing Loss for Robust Facial Landmark Localisation with
// Convolutional Neural Networks" (CVPR 2018) の損失。
//
// 誤差 δ = |output - target| に対して
//
//	δ < ω のとき ω·ln(1 + δ/ε)
//	それ以外    δ - C,  C = ω·(1 - ln(1 + ω/ε))
//
// を計算し、サンプルごとに関節と座標について総和を取った後、バッチで平均し、
// 関節数で割ってLossWeight倍する。
type Wing struct {
	omega           float32
	epsilon         float32
	c               float32
	useTargetWeight bool
	lossWeight      float32
}

func NewWing(omega, epsilon float32, useTargetWeight bool, lossWeight float32) (Wing, error) {
	if !(omega > 0) {
		return Wing{}, fmt.Errorf("%s: omega は正の値でなければなりません。omega = %v", WingName, omega)
	}
	if !(epsilon > 0) {
		return Wing{}, fmt.Errorf("%s: epsilon は正の値でなければなりません。epsilon = %v", WingName, epsilon)
	}
	return Wing{
		omega:           omega,
		epsilon:         epsilon,
		c:               mathx.WingC(omega, epsilon),
		useTargetWeight: useTargetWeight,
		lossWeight:      lossWeight,
	}, nil
}

func (l Wing) Omega() float32 {
	return l.omega
}

func (l Wing) Epsilon() float32 {
	return l.epsilon
}

// Cは二つの区間を δ=ω で連続にする定数。
func (l Wing) C() float32 {
	return l.c
}

func (l Wing) UseTargetWeight() bool {
	return l.useTargetWeight
}

func (l Wing) LossWeight() float32 {
	return l.lossWeight
}

func (l Wing) elementLoss(delta float32) float32 {
	return mathx.Wing(delta, l.omega, l.epsilon, l.c)
}

func (l Wing) Func(output, target, weight tensor3d.General) (float32, error) {
	x, err := residual(WingName, l.useTargetWeight, output, target, weight)
	if err != nil {
		return 0.0, err
	}
	perSample := x.Abs().MapFunc(l.elementLoss).SumByBatch()
	mean := omath.Mean(perSample...)
	return mean / float32(output.Joints) * l.lossWeight, nil
}

func (l Wing) Derivative(output, target, weight tensor3d.General) (tensor3d.General, error) {
	x, err := residual(WingName, l.useTargetWeight, output, target, weight)
	if err != nil {
		return tensor3d.General{}, err
	}
	grad := x.MapFunc(func(e float32) float32 {
		return mathx.WingDerivative(e, l.omega, l.epsilon)
	})
	grad.Scal(l.lossWeight / float32(output.Batches*output.Joints))
	return chainWeight(WingName, l.useTargetWeight, grad, weight)
}
