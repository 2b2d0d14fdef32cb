package vector

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/sw965/fina"
	"gonum.org/v1/gonum/blas/blas32"
)

const logEps = 1e-7

func New(data []float32) blas32.Vector {
	return blas32.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:    vec.N,
		Inc:  vec.Inc,
		Data: slices.Clone(vec.Data),
	}
}

func Dot(x, y blas32.Vector) (float32, error) {
	if x.N != y.N {
		return 0.0, fmt.Errorf("vector.Dot: %w", fina.ErrLengthMismatch)
	}
	return blas32.Dot(x, y), nil
}

func Nrm2(x blas32.Vector) float32 {
	return blas32.Nrm2(x)
}

func Euclidean(x, y blas32.Vector) (float32, error) {
	if x.N != y.N {
		return 0.0, fmt.Errorf("vector.Euclidean: %w", fina.ErrLengthMismatch)
	}
	diff := Clone(y)
	blas32.Axpy(-1.0, x, diff)
	return blas32.Nrm2(diff), nil
}

func CosineSimilarity(x, y blas32.Vector) (float32, error) {
	if x.N != y.N {
		return 0.0, fmt.Errorf("vector.CosineSimilarity: %w", fina.ErrLengthMismatch)
	}
	if x.N == 0 {
		return 0.0, fmt.Errorf("vector.CosineSimilarity: %w", fina.ErrEmptyInput)
	}

	normX := blas32.Nrm2(x)
	normY := blas32.Nrm2(y)
	if normX == 0.0 || normY == 0.0 {
		return 0.0, fmt.Errorf("vector.CosineSimilarity: %w", fina.ErrZeroNorm)
	}
	return blas32.Dot(x, y) / (normX * normY), nil
}

func Sigmoid(x blas32.Vector) blas32.Vector {
	y := NewZerosLike(x)
	for i, xi := range x.Data {
		if xi >= 0 {
			y.Data[i] = 1.0 / (1.0 + math32.Exp(-xi))
		} else {
			e := math32.Exp(xi)
			y.Data[i] = e / (1.0 + e)
		}
	}
	return y
}

func Softmax(x blas32.Vector) (blas32.Vector, error) {
	if x.N == 0 {
		return blas32.Vector{}, fmt.Errorf("vector.Softmax: %w", fina.ErrEmptyInput)
	}

	maxX := x.Data[0] // オーバーフロー対策
	for _, xi := range x.Data[1:] {
		maxX = math32.Max(maxX, xi)
	}

	y := NewZerosLike(x)
	sumExpX := float32(0.0)
	for i, xi := range x.Data {
		y.Data[i] = math32.Exp(xi - maxX)
		sumExpX += y.Data[i]
	}
	blas32.Scal(1.0/sumExpX, y)
	return y, nil
}

func Standardize(x blas32.Vector) (blas32.Vector, float32, float32, error) {
	if x.N == 0 {
		return blas32.Vector{}, 0.0, 0.0, fmt.Errorf("vector.Standardize: %w", fina.ErrEmptyInput)
	}

	n := float32(x.N)
	mean := float32(0.0)
	for _, xi := range x.Data {
		mean += xi
	}
	mean /= n

	sqSum := float32(0.0)
	for _, xi := range x.Data {
		diff := xi - mean
		sqSum += diff * diff
	}
	std := math32.Sqrt(sqSum / n)
	if std == 0.0 {
		return blas32.Vector{}, 0.0, 0.0, fmt.Errorf("vector.Standardize: std == 0: %w", fina.ErrDegenerateRange)
	}

	y := NewZerosLike(x)
	for i, xi := range x.Data {
		y.Data[i] = (xi - mean) / std
	}
	return y, mean, std, nil
}

func MinMaxScale(x blas32.Vector) (blas32.Vector, error) {
	if x.N == 0 {
		return blas32.Vector{}, fmt.Errorf("vector.MinMaxScale: %w", fina.ErrEmptyInput)
	}

	min := x.Data[0]
	max := x.Data[0]
	for _, xi := range x.Data[1:] {
		min = math32.Min(min, xi)
		max = math32.Max(max, xi)
	}
	if min == max {
		return blas32.Vector{}, fmt.Errorf("vector.MinMaxScale: max == min: %w", fina.ErrDegenerateRange)
	}

	y := NewZerosLike(x)
	for i, xi := range x.Data {
		y.Data[i] = (xi - min) / (max - min)
	}
	return y, nil
}

func CrossEntropy(y, t blas32.Vector) (float32, error) {
	if y.N != t.N {
		return 0.0, fmt.Errorf("vector.CrossEntropy: %w", fina.ErrLengthMismatch)
	}
	if y.N == 0 {
		return 0.0, fmt.Errorf("vector.CrossEntropy: %w", fina.ErrEmptyInput)
	}

	loss := float32(0.0)
	for i, yi := range y.Data {
		loss += -t.Data[i] * math32.Log(math32.Max(yi, logEps))
	}
	return loss, nil
}
