package interpolation

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	z "go.dedis.ch/sharerecovery/internal/testing"
	"go.dedis.ch/sharerecovery/types"
)

// f(x) = 2 + 3x, shares (1,5) and (2,8)
func Test_Interpolation_Line(t *testing.T) {
	shares := []types.Share{z.Share(1, 5), z.Share(2, 8)}

	secret, err := SecretAtZero(shares, 2)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), secret)
}

func Test_Interpolation_Single_Share(t *testing.T) {
	secret, err := SecretAtZero([]types.Share{z.Share(7, 42)}, 1)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), secret)

	// any y, any non-zero x
	for _, x := range []int64{-5, 1, 1000} {
		for _, y := range []int64{-3, 0, 99} {
			secret, err := SecretAtZero([]types.Share{z.Share(x, y)}, 1)
			require.NoError(t, err)
			require.Equal(t, 0, secret.Cmp(big.NewInt(y)))
		}
	}
}

func Test_Interpolation_Duplicate_Abscissa(t *testing.T) {
	shares := []types.Share{z.Share(1, 5), z.Share(1, 9)}

	secret, err := SecretAtZero(shares, 2)
	require.Nil(t, secret)
	require.ErrorIs(t, err, ErrDuplicateAbscissa)
	require.ErrorIs(t, err, types.ErrDivisionByZero)

	var dupErr *DuplicateAbscissaError
	require.True(t, errors.As(err, &dupErr))
	require.Equal(t, big.NewInt(1), dupErr.X)
}

func Test_Interpolation_Duplicate_Outside_Threshold_Is_Ignored(t *testing.T) {
	// the duplicate is not among the first k shares
	shares := []types.Share{z.Share(1, 5), z.Share(2, 8), z.Share(2, 8)}

	secret, err := SecretAtZero(shares, 2)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), secret)
}

func Test_Interpolation_Insufficient_Shares(t *testing.T) {
	shares := []types.Share{z.Share(1, 5), z.Share(1, 5)}

	// the duplicate would fail if any arithmetic was performed
	_, err := SecretAtZero(shares, 3)
	require.ErrorIs(t, err, ErrInsufficientShares)
	require.False(t, errors.Is(err, ErrDuplicateAbscissa))

	var insErr *InsufficientSharesError
	require.True(t, errors.As(err, &insErr))
	require.Equal(t, 2, insErr.Have)
	require.Equal(t, 3, insErr.Need)

	_, err = SecretAtZero(nil, 1)
	require.ErrorIs(t, err, ErrInsufficientShares)
}

func Test_Interpolation_Unset_Share(t *testing.T) {
	secret, err := SecretAtZero([]types.Share{{}}, 1)
	require.Nil(t, secret)
	require.ErrorIs(t, err, types.ErrNilCoordinate)

	// a partly filled slice fails before any arithmetic
	shares := make([]types.Share, 3)
	shares[0] = z.Share(1, 5)
	shares[1] = z.Share(1, 9)
	_, err = SecretAtZero(shares, 3)
	require.ErrorIs(t, err, types.ErrNilCoordinate)
	require.False(t, errors.Is(err, ErrDuplicateAbscissa))

	// unset shares past k are never read
	secret, err = SecretAtZero([]types.Share{z.Share(7, 42), {}}, 1)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), secret)
}

func Test_Interpolation_Invalid_Threshold(t *testing.T) {
	_, err := SecretAtZero([]types.Share{z.Share(1, 5)}, 0)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = SecretAtZero(nil, -1)
	require.ErrorIs(t, err, ErrInvalidThreshold)
}

func Test_Interpolation_Inconsistent_Shares(t *testing.T) {
	// the line through (1,5) and (3,8) crosses zero at 7/2
	shares := []types.Share{z.Share(1, 5), z.Share(3, 8)}

	secret, err := SecretAtZero(shares, 2)
	require.Nil(t, secret)
	require.ErrorIs(t, err, types.ErrNotAnInteger)

	var incErr *InconsistentSharesError
	require.True(t, errors.As(err, &incErr))
	require.Equal(t, "7/2", incErr.Value.String())
}

func Test_Interpolation_Altered_Share(t *testing.T) {
	// f(x) = 17 + 4x + 6x^2 + x^3
	p := z.NewPolynomial(17, 4, 6, 1)

	shares := p.Shares(1, 3, 5, 6)
	secret, err := SecretAtZero(shares, 4)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(17), secret)

	// the basis weight of x=1 is 9/4, a unit change in y lands off the integers
	shares[0] = z.Share(1, p.Evaluate(big.NewInt(1)).Int64()+1)
	secret, err = SecretAtZero(shares, 4)
	require.Nil(t, secret)
	require.ErrorIs(t, err, types.ErrNotAnInteger)

	// at 2, 4, 6, 8 every basis weight is an integer (4, -6, 4, -1): the
	// alteration goes undetected and shifts the secret by 4
	shares = p.Shares(2, 4, 6, 8)
	shares[0] = z.Share(2, p.Evaluate(big.NewInt(2)).Int64()+1)
	secret, err = SecretAtZero(shares, 4)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(21), secret)
}

func Test_Interpolation_Uses_First_K(t *testing.T) {
	// the third share is garbage and must not be read
	shares := []types.Share{z.Share(1, 5), z.Share(2, 8), z.Share(3, 1000)}

	secret, err := SecretAtZero(shares, 2)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), secret)
}

func Test_Interpolation_Random_Polynomials(t *testing.T) {
	bound, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)

	for degree := 0; degree < 12; degree++ {
		for i := 0; i < 5; i++ {
			secret, err := z.RandomInt(bound)
			require.NoError(t, err)

			p, err := z.NewRandomPolynomial(secret, degree, bound)
			require.NoError(t, err)

			xs, err := z.DistinctAbscissas(degree+1, 1000)
			require.NoError(t, err)

			res, err := SecretAtZero(p.Shares(xs...), degree+1)
			require.NoError(t, err)
			require.Equal(t, secret.String(), res.String())
		}
	}
}

func Test_Interpolation_More_Points_Than_Degree(t *testing.T) {
	// k larger than degree+1 still recovers the secret
	p, err := z.NewRandomPolynomial(big.NewInt(-123456789), 2, big.NewInt(1<<40))
	require.NoError(t, err)

	secret, err := SecretAtZero(p.Shares(1, 2, 3, 4, 5, 6, 7), 7)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(-123456789), secret)
}

func Test_Interpolation_Threshold_Invariance(t *testing.T) {
	p, err := z.NewRandomPolynomial(big.NewInt(987654321), 3, big.NewInt(1<<50))
	require.NoError(t, err)

	subsets := [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{8, 1, 6, 3},
		{-4, 2, 9, 11},
		{100, 200, 300, 400},
	}

	var first *big.Int
	for _, xs := range subsets {
		secret, err := SecretAtZero(p.Shares(xs...), 4)
		require.NoError(t, err)
		if first == nil {
			first = secret
		}
		require.Equal(t, first, secret)
	}
	require.Equal(t, big.NewInt(987654321), first)
}

func Test_Interpolation_Is_Deterministic_And_Pure(t *testing.T) {
	p := z.NewPolynomial(11, -2, 5)
	shares := p.Shares(3, 1, 2)

	res1, err := SecretAtZero(shares, 3)
	require.NoError(t, err)
	res2, err := SecretAtZero(shares, 3)
	require.NoError(t, err)
	require.Equal(t, res1, res2)

	// inputs untouched
	require.Equal(t, p.Shares(3, 1, 2), shares)

	// mutating the result does not leak into later calls
	res1.SetInt64(0)
	res3, err := SecretAtZero(shares, 3)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(11), res3)
}

func Test_Interpolation_Concurrent(t *testing.T) {
	const routines = 16

	wg := sync.WaitGroup{}
	wg.Add(routines)

	results := make([]*big.Int, routines)
	errs := make([]error, routines)
	for i := 0; i < routines; i++ {
		go func(i int) {
			defer wg.Done()
			p := z.NewPolynomial(int64(i), 7, 3, 1)
			results[i], errs[i] = SecretAtZero(p.Shares(1, 2, 3, 4), 4)
		}(i)
	}
	wg.Wait()

	for i := 0; i < routines; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, fmt.Sprint(i), results[i].String())
	}
}
