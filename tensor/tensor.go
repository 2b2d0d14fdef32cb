package tensor

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/sw965/fina"
	omwmath "github.com/sw965/omw/math"
)

type D1 []float64

func NewD1Zeros(n int) D1 {
	return make(D1, n)
}

func NewD1ZerosLike(d1 D1) D1 {
	return NewD1Zeros(len(d1))
}

func NewD1Ones(n int) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = 1.0
	}
	return ret
}

func NewD1OnesLike(d1 D1) D1 {
	return NewD1Ones(len(d1))
}

func NewD1RandUniform(n int, min, max float64, rng *rand.Rand) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = rng.Float64()*(max-min) + min
	}
	return ret
}

func (d1 D1) Clone() D1 {
	return D1(slices.Clone(d1))
}

func (d1 D1) Add(other D1) (D1, error) {
	if len(d1) != len(other) {
		return nil, fmt.Errorf("tensor.D1.Add: %w", fina.ErrLengthMismatch)
	}

	y := make(D1, len(d1))
	for i := range y {
		y[i] = d1[i] + other[i]
	}
	return y, nil
}

func (d1 D1) Sub(other D1) (D1, error) {
	if len(d1) != len(other) {
		return nil, fmt.Errorf("tensor.D1.Sub: %w", fina.ErrLengthMismatch)
	}

	y := make(D1, len(d1))
	for i := range y {
		y[i] = d1[i] - other[i]
	}
	return y, nil
}

func (d1 D1) Mul(other D1) (D1, error) {
	if len(d1) != len(other) {
		return nil, fmt.Errorf("tensor.D1.Mul: %w", fina.ErrLengthMismatch)
	}

	y := make(D1, len(d1))
	for i := range y {
		y[i] = d1[i] * other[i]
	}
	return y, nil
}

func (d1 D1) Div(other D1) (D1, error) {
	if len(d1) != len(other) {
		return nil, fmt.Errorf("tensor.D1.Div: %w", fina.ErrLengthMismatch)
	}

	y := make(D1, len(d1))
	for i := range y {
		y[i] = d1[i] / other[i]
	}
	return y, nil
}

func (d1 D1) DotProduct(other D1) (float64, error) {
	mul, err := d1.Mul(other)
	if err != nil {
		return 0.0, err
	}
	return omwmath.Sum(mul...), nil
}
