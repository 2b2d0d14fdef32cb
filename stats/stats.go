package stats

import (
	"fmt"
	"math"

	"github.com/sw965/fina"
	"github.com/sw965/fina/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func Mean(data tensor.D1) (float64, error) {
	if len(data) == 0 {
		return 0.0, fmt.Errorf("stats.Mean: %w", fina.ErrEmptyInput)
	}
	return stat.Mean(data, nil), nil
}

// 母分散 (divisor n)
func Variance(data tensor.D1) (float64, error) {
	if len(data) == 0 {
		return 0.0, fmt.Errorf("stats.Variance: %w", fina.ErrEmptyInput)
	}
	m := stat.Mean(data, nil)
	return stat.MomentAbout(2, data, m, nil), nil
}

func StdDev(data tensor.D1) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0.0, err
	}
	return math.Sqrt(v), nil
}

func RMS(data tensor.D1) (float64, error) {
	if len(data) == 0 {
		return 0.0, fmt.Errorf("stats.RMS: %w", fina.ErrEmptyInput)
	}
	sqSum := floats.Dot(data, data)
	return math.Sqrt(sqSum / float64(len(data))), nil
}

/*
指数移動平均。
ema[0] = data[0]
ema[i] = alpha*data[i] + (1-alpha)*ema[i-1]

alphaは[0, 1]の範囲が一般的だが、範囲外でも計算はそのまま成り立つ為、検証しない。
*/
func EMA(data tensor.D1, alpha float64) (tensor.D1, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("stats.EMA: %w", fina.ErrEmptyInput)
	}

	ema := make(tensor.D1, len(data))
	ema[0] = data[0]
	for i := 1; i < len(data); i++ {
		ema[i] = alpha*data[i] + (1.0-alpha)*ema[i-1]
	}
	return ema, nil
}
