package interpolation

import (
	"math/big"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sharerecovery/types"
	"golang.org/x/xerrors"
)

// SecretAtZero evaluates at x = 0 the unique polynomial of degree < k that
// passes through the first k shares, using exact fractions:
//
//	f(0) = sum_i y_i * prod_{j!=i} (0 - x_j) / (x_i - x_j)
//
// Callers pick which k shares come first. The function keeps no state and is
// safe for concurrent use.
func SecretAtZero(shares []types.Share, k int) (*big.Int, error) {
	if k <= 0 {
		return nil, xerrors.Errorf("k=%d: %w", k, ErrInvalidThreshold)
	}
	if len(shares) < k {
		return nil, &InsufficientSharesError{Have: len(shares), Need: k}
	}
	for i := 0; i < k; i++ {
		if !shares[i].Valid() {
			return nil, xerrors.Errorf("share %d: %w", i, types.ErrNilCoordinate)
		}
	}

	var acc types.Fraction
	for i := 0; i < k; i++ {
		xi := shares[i].X()

		term := types.FractionFromInt(shares[i].Y())
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			xj := shares[j].X()

			factor, err := types.NewFraction(
				new(big.Int).Neg(xj),
				new(big.Int).Sub(xi, xj),
			)
			if err != nil {
				return nil, &DuplicateAbscissaError{X: xi}
			}
			term = term.Mul(factor)
		}
		acc = acc.Add(term)
	}

	secret, err := acc.Int()
	if err != nil {
		return nil, &InconsistentSharesError{Value: acc}
	}

	log.Debug().Msgf("interpolated secret from %d shares", k)
	return secret, nil
}
