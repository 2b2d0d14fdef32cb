package ml1d

import (
	"fmt"
	"math"

	"github.com/sw965/fina"
	"github.com/sw965/fina/ml/scalar"
	"github.com/sw965/fina/stats"
	"github.com/sw965/fina/tensor"
	"github.com/sw965/omw/fn"
	omwmath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/floats"
)

// log(0)回避用の下限値。
const logEps = 1e-12

func Sigmoid(x tensor.D1) tensor.D1 {
	return fn.Map[tensor.D1](x, scalar.Sigmoid)
}

func ReLU(x tensor.D1) tensor.D1 {
	return fn.Map[tensor.D1](x, scalar.ReLU)
}

func LeakyReLU(alpha float64) func(tensor.D1) tensor.D1 {
	return func(x tensor.D1) tensor.D1 {
		return fn.Map[tensor.D1](x, scalar.LeakyReLU(alpha))
	}
}

func Tanh(x tensor.D1) tensor.D1 {
	return fn.Map[tensor.D1](x, math.Tanh)
}

func Softmax(x tensor.D1) (tensor.D1, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("ml1d.Softmax: %w", fina.ErrEmptyInput)
	}

	maxX := omwmath.Max(x...) // オーバーフロー対策
	expX := make(tensor.D1, len(x))
	sumExpX := 0.0
	for i, xi := range x {
		expX[i] = math.Exp(xi - maxX)
		sumExpX += expX[i]
	}

	y := make(tensor.D1, len(x))
	for i := range expX {
		y[i] = expX[i] / sumExpX
	}
	return y, nil
}

func MeanSquaredError(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("ml1d.MeanSquaredError: %w", fina.ErrLengthMismatch)
	}
	if len(y) == 0 {
		return 0.0, fmt.Errorf("ml1d.MeanSquaredError: %w", fina.ErrEmptyInput)
	}

	sqSum := 0.0
	for i := range y {
		diff := y[i] - t[i]
		sqSum += (diff * diff)
	}
	return sqSum / float64(len(y)), nil
}

// 総和であり、平均ではない。CrossEntropyError(D1{0.8, 0.2}, D1{1, 0}) ≒ 0.2231
func CrossEntropyError(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("ml1d.CrossEntropyError: %w", fina.ErrLengthMismatch)
	}
	if len(y) == 0 {
		return 0.0, fmt.Errorf("ml1d.CrossEntropyError: %w", fina.ErrEmptyInput)
	}

	loss := 0.0
	for i := range y {
		yi := math.Max(y[i], logEps)
		loss += -t[i] * math.Log(yi)
	}
	return loss, nil
}

func LogLoss(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("ml1d.LogLoss: %w", fina.ErrLengthMismatch)
	}
	if len(y) == 0 {
		return 0.0, fmt.Errorf("ml1d.LogLoss: %w", fina.ErrEmptyInput)
	}

	loss := 0.0
	for i := range y {
		yi := math.Min(math.Max(y[i], logEps), 1.0-logEps)
		ti := t[i]
		loss += ti*math.Log(yi) + (1.0-ti)*math.Log(1.0-yi)
	}
	return -loss / float64(len(y)), nil
}

func MinMaxNormalize(x tensor.D1) (tensor.D1, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("ml1d.MinMaxNormalize: %w", fina.ErrEmptyInput)
	}

	min := floats.Min(x)
	max := floats.Max(x)
	if min == max {
		return nil, fmt.Errorf("ml1d.MinMaxNormalize: max == min: %w", fina.ErrDegenerateRange)
	}

	y := make(tensor.D1, len(x))
	for i, xi := range x {
		y[i] = (xi - min) / (max - min)
	}
	return y, nil
}

func ZScoreNormalize(x tensor.D1) (tensor.D1, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("ml1d.ZScoreNormalize: %w", fina.ErrEmptyInput)
	}

	mean, err := stats.Mean(x)
	if err != nil {
		return nil, err
	}
	std, err := stats.StdDev(x)
	if err != nil {
		return nil, err
	}
	if std == 0.0 {
		return nil, fmt.Errorf("ml1d.ZScoreNormalize: std == 0: %w", fina.ErrDegenerateRange)
	}

	y := make(tensor.D1, len(x))
	for i, xi := range x {
		y[i] = (xi - mean) / std
	}
	return y, nil
}

func NumericalDifferentiation(x tensor.D1, f func(tensor.D1) float64) tensor.D1 {
	h := 0.001
	grad := make(tensor.D1, len(x))
	for i := range x {
		tmp := x[i]

		x[i] = tmp + h
		y1 := f(x)

		x[i] = tmp - h
		y2 := f(x)

		grad[i] = (y1 - y2) / (2 * h)
		x[i] = tmp
	}
	return grad
}
