package fina

import (
	"errors"
)

var (
	ErrEmptyInput      = errors.New("input must not be empty")
	ErrLengthMismatch  = errors.New("input lengths do not match")
	ErrZeroNorm        = errors.New("norm is zero")
	ErrDegenerateRange = errors.New("range is degenerate")
)
