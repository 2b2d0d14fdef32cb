package vector

import (
	"fmt"

	"github.com/sw965/fina"
	"github.com/sw965/fina/tensor"
	"gonum.org/v1/gonum/floats"
)

func Dot(a, b tensor.D1) (float64, error) {
	if len(a) != len(b) {
		return 0.0, fmt.Errorf("vector.Dot: %w", fina.ErrLengthMismatch)
	}
	return floats.Dot(a, b), nil
}

func Euclidean(a, b tensor.D1) (float64, error) {
	if len(a) != len(b) {
		return 0.0, fmt.Errorf("vector.Euclidean: %w", fina.ErrLengthMismatch)
	}
	return floats.Distance(a, b, 2), nil
}

func Norm(v tensor.D1) float64 {
	return floats.Norm(v, 2)
}

func CosineSimilarity(a, b tensor.D1) (float64, error) {
	if len(a) != len(b) {
		return 0.0, fmt.Errorf("vector.CosineSimilarity: %w", fina.ErrLengthMismatch)
	}
	if len(a) == 0 {
		return 0.0, fmt.Errorf("vector.CosineSimilarity: %w", fina.ErrEmptyInput)
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0.0 || normB == 0.0 {
		return 0.0, fmt.Errorf("vector.CosineSimilarity: %w", fina.ErrZeroNorm)
	}
	return floats.Dot(a, b) / (normA * normB), nil
}
