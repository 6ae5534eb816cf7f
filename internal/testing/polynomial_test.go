package testing

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Polynomial_Evaluate(t *testing.T) {
	// f(x) = 2 + 3x + x^2
	p := NewPolynomial(2, 3, 1)
	require.Equal(t, 2, p.Degree())
	require.Equal(t, big.NewInt(2), p.Secret())
	require.Equal(t, big.NewInt(6), p.Evaluate(big.NewInt(1)))
	require.Equal(t, 0, p.Evaluate(big.NewInt(-1)).Sign())

	shares := p.Shares(1, 2)
	require.Equal(t, big.NewInt(12), shares[1].Y())
}

func Test_Random_Helpers(t *testing.T) {
	bound := big.NewInt(10)
	for i := 0; i < 100; i++ {
		n, err := RandomInt(bound)
		require.NoError(t, err)
		require.True(t, n.Cmp(big.NewInt(-10)) >= 0)
		require.True(t, n.Cmp(bound) < 0)
	}

	xs, err := DistinctAbscissas(15, 10)
	require.NoError(t, err)
	seen := map[int64]bool{}
	for _, x := range xs {
		require.NotEqual(t, int64(0), x)
		require.False(t, seen[x])
		seen[x] = true
	}

	p, err := NewRandomPolynomial(big.NewInt(7), 4, bound)
	require.NoError(t, err)
	require.Equal(t, 4, p.Degree())
	require.Equal(t, big.NewInt(7), p.Evaluate(big.NewInt(0)))
}
