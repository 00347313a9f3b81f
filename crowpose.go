// Package crowpose はキーポイント回帰モデルの学習に用いる損失関数群のルートパッケージ。
// 損失関数の本体は loss パッケージ、テンソルは blas32/tensor/3d パッケージにある。
package crowpose

import (
	"golang.org/x/exp/constraints"
)

// NumericalGradientは中心差分でfのxsに関する勾配を求める。xsは一時的に書き換えられるが、元に戻される。
func NumericalGradient[X constraints.Float](xs []X, h X, f func([]X) X) []X {
	n := len(xs)
	grad := make([]X, n)
	for i := 0; i < n; i++ {
		tmp := xs[i]
		xs[i] = tmp + h
		y1 := f(xs)

		xs[i] = tmp - h
		y2 := f(xs)

		grad[i] = (y1 - y2) / (h * 2)
		xs[i] = tmp
	}
	return grad
}
