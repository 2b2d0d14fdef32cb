package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sw965/fina"
	"github.com/sw965/fina/stats"
	"github.com/sw965/fina/tensor"
	omwrand "github.com/sw965/omw/math/rand"
)

func TestMean(t *testing.T) {
	result, err := stats.Mean(tensor.D1{1.0, 2.0, 3.0})
	if err != nil {
		panic(err)
	}
	if result != 2.0 {
		t.Errorf("result = %v, expected = 2.0", result)
	}
}

func TestVariance(t *testing.T) {
	result, err := stats.Variance(tensor.D1{1.0, 2.0, 3.0})
	if err != nil {
		panic(err)
	}
	expected := 2.0 / 3.0
	if math.Abs(result-expected) > 0.0001 {
		t.Errorf("result = %v, expected = %v", result, expected)
	}
}

func TestStdDev(t *testing.T) {
	result, err := stats.StdDev(tensor.D1{1.0, 2.0, 3.0})
	if err != nil {
		panic(err)
	}
	expected := 0.8165
	if math.Abs(result-expected) > 0.0001 {
		t.Errorf("result = %v, expected = %v", result, expected)
	}
}

func TestStdDevSquaredIsVariance(t *testing.T) {
	rng := omwrand.NewMt19937()
	for i := 0; i < 100; i++ {
		data := tensor.NewD1RandUniform(64, -10.0, 10.0, rng)
		v, err := stats.Variance(data)
		if err != nil {
			panic(err)
		}
		s, err := stats.StdDev(data)
		if err != nil {
			panic(err)
		}
		if math.Abs(s*s-v) > 0.0001 {
			t.Errorf("s*s = %v, v = %v", s*s, v)
		}
	}
}

func TestRMS(t *testing.T) {
	result, err := stats.RMS(tensor.D1{1.0, 2.0, 3.0})
	if err != nil {
		panic(err)
	}
	expected := 2.1602
	if math.Abs(result-expected) > 0.0001 {
		t.Errorf("result = %v, expected = %v", result, expected)
	}
}

func TestEMA(t *testing.T) {
	result, err := stats.EMA(tensor.D1{1.0, 2.0, 3.0, 4.0}, 0.5)
	if err != nil {
		panic(err)
	}
	expected := tensor.D1{1.0, 1.5, 2.25, 3.125}
	for i := range result {
		if math.Abs(result[i]-expected[i]) > 0.0001 {
			t.Errorf("result = %v, expected = %v", result, expected)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	empty := tensor.D1{}

	if _, err := stats.Mean(empty); !errors.Is(err, fina.ErrEmptyInput) {
		t.Errorf("Mean err = %v", err)
	}
	if _, err := stats.Variance(empty); !errors.Is(err, fina.ErrEmptyInput) {
		t.Errorf("Variance err = %v", err)
	}
	if _, err := stats.StdDev(empty); !errors.Is(err, fina.ErrEmptyInput) {
		t.Errorf("StdDev err = %v", err)
	}
	if _, err := stats.RMS(empty); !errors.Is(err, fina.ErrEmptyInput) {
		t.Errorf("RMS err = %v", err)
	}
	if _, err := stats.EMA(empty, 0.5); !errors.Is(err, fina.ErrEmptyInput) {
		t.Errorf("EMA err = %v", err)
	}
}
