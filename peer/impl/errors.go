package impl

import (
	"go.dedis.ch/sharerecovery/peer/impl/interpolation"
	"go.dedis.ch/sharerecovery/peer/impl/loader"
	"go.dedis.ch/sharerecovery/types"
	"golang.org/x/xerrors"
)

// Failure kinds reported to users of the CLI and HTTP service.
const (
	KindInsufficientShares = "insufficient_shares"
	KindDuplicateAbscissa  = "duplicate_abscissa"
	KindDivisionByZero     = "division_by_zero"
	KindNotAnInteger       = "not_an_integer"
	KindInvalidThreshold   = "invalid_threshold"
	KindInvalidInput       = "invalid_input"
	KindIO                 = "io"
)

// ErrorKind maps a recovery error to a stable failure kind. It returns an
// empty string for a nil error.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case xerrors.Is(err, interpolation.ErrInsufficientShares):
		return KindInsufficientShares
	case xerrors.Is(err, interpolation.ErrDuplicateAbscissa):
		return KindDuplicateAbscissa
	case xerrors.Is(err, types.ErrDivisionByZero):
		return KindDivisionByZero
	case xerrors.Is(err, types.ErrNotAnInteger):
		return KindNotAnInteger
	case xerrors.Is(err, interpolation.ErrInvalidThreshold):
		return KindInvalidThreshold
	case xerrors.Is(err, loader.ErrInvalidInput), xerrors.Is(err, types.ErrNilCoordinate):
		return KindInvalidInput
	default:
		return KindIO
	}
}
