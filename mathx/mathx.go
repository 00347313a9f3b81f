package mathx

import (
	"github.com/chewxy/math32"
)

func CentralDifference(plusY, minusY, h float32) float32 {
	return (plusY - minusY) / (2.0 * h)
}

func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1.0
	case x < 0:
		return -1.0
	default:
		return 0.0
	}
}

// SmoothL1は|x|<1で0.5x², それ以外で|x|-0.5を返す。
func SmoothL1(x float32) float32 {
	abs := math32.Abs(x)
	if abs < 1.0 {
		return 0.5 * x * x
	}
	return abs - 0.5
}

func SmoothL1Derivative(x float32) float32 {
	if math32.Abs(x) < 1.0 {
		return x
	}
	return Sign(x)
}

// WingCは二つの区間がδ=ωで連続になるための定数Cを返す。
func WingC(omega, epsilon float32) float32 {
	return omega * (1.0 - math32.Log(1.0+omega/epsilon))
}

// Wingは誤差の大きさdelta(>=0)に対するWing Lossを返す。cはWingC(omega, epsilon)。
func Wing(delta, omega, epsilon, c float32) float32 {
	if delta < omega {
		return omega * math32.Log(1.0+delta/epsilon)
	}
	return delta - c
}

// WingDerivativeはWing(|x|)のxに関する微分。
func WingDerivative(x, omega, epsilon float32) float32 {
	abs := math32.Abs(x)
	if abs < omega {
		return Sign(x) * omega / (epsilon + abs)
	}
	return Sign(x)
}
