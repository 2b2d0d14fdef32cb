package scalar

import (
	"fmt"
	"math"

	"github.com/sw965/fina"
)

// x < 0 では exp(-x) がオーバーフローする為、符号で分岐する。
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

func SigmoidGrad(y float64) float64 {
	return y * (1.0 - y)
}

func SigmoidDerivative(x float64) float64 {
	y := Sigmoid(x)
	return SigmoidGrad(y)
}

func ReLU(x float64) float64 {
	if x > 0 {
		return x
	} else {
		return 0
	}
}

// alphaに既定値はない。慣例としては0.01～0.1程度が使われる。
func LeakyReLU(alpha float64) func(float64) float64 {
	return func(x float64) float64 {
		if x > 0 {
			return x
		} else {
			return x * alpha
		}
	}
}

func Tanh(x float64) float64 {
	return math.Tanh(x)
}

func TanhGrad(y float64) float64 {
	return 1.0 - (y * y)
}

// min <= max でなければならない。
func Clamp(x, min, max float64) (float64, error) {
	if min > max {
		return 0.0, fmt.Errorf("scalar.Clamp: min > max: %w", fina.ErrDegenerateRange)
	}
	if x < min {
		return min, nil
	}
	if x > max {
		return max, nil
	}
	return x, nil
}

func NumericalDifferentiation(x float64, f func(float64) float64) float64 {
	h := 0.001
	y1 := f(x + h)
	y2 := f(x - h)
	return (y1 - y2) / (2 * h)
}
