package interpolation

import (
	"fmt"
	"math/big"

	"go.dedis.ch/sharerecovery/types"
	"golang.org/x/xerrors"
)

var (
	// ErrInsufficientShares is matched by InsufficientSharesError.
	ErrInsufficientShares = xerrors.New("insufficient shares")

	// ErrDuplicateAbscissa is matched by DuplicateAbscissaError.
	ErrDuplicateAbscissa = xerrors.New("duplicate abscissa")

	// ErrInvalidThreshold is returned when k is not positive.
	ErrInvalidThreshold = xerrors.New("threshold must be positive")
)

// InsufficientSharesError reports how many shares were available versus
// required.
type InsufficientSharesError struct {
	Have int
	Need int
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("not enough shares: have %d, need k=%d", e.Have, e.Need)
}

// Is implements errors.Is.
func (e *InsufficientSharesError) Is(target error) bool {
	return target == ErrInsufficientShares
}

// DuplicateAbscissaError is returned when two of the selected shares have the
// same x. It matches both ErrDuplicateAbscissa and types.ErrDivisionByZero.
type DuplicateAbscissaError struct {
	X *big.Int
}

func (e *DuplicateAbscissaError) Error() string {
	return fmt.Sprintf("duplicate x=%s detected during interpolation", e.X)
}

// Is implements errors.Is.
func (e *DuplicateAbscissaError) Is(target error) bool {
	return target == ErrDuplicateAbscissa
}

// Unwrap returns types.ErrDivisionByZero.
func (e *DuplicateAbscissaError) Unwrap() error {
	return types.ErrDivisionByZero
}

// InconsistentSharesError is returned when the interpolated value is not an
// integer, which means the shares are not samples of one integer polynomial.
// It matches types.ErrNotAnInteger.
type InconsistentSharesError struct {
	Value types.Fraction
}

func (e *InconsistentSharesError) Error() string {
	return fmt.Sprintf("inconsistent shares: secret %s is not an integer", e.Value)
}

// Unwrap returns types.ErrNotAnInteger.
func (e *InconsistentSharesError) Unwrap() error {
	return types.ErrNotAnInteger
}
