// Package testing provides helpers shared by the package tests: random
// integer polynomials whose constant term is a chosen secret, and the shares
// sampled from them.
package testing

import (
	"crypto/rand"
	"math/big"

	"go.dedis.ch/sharerecovery/types"
)

// Polynomial is a polynomial with integer coefficients. coefficients[0] is the
// secret.
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial creates a polynomial from its coefficients, constant first.
func NewPolynomial(coefficients ...int64) *Polynomial {
	p := Polynomial{coefficients: make([]*big.Int, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = big.NewInt(c)
	}
	return &p
}

// NewRandomPolynomial creates a polynomial of the given degree with f(0) =
// secret and other coefficients drawn in [-bound, bound).
func NewRandomPolynomial(secret *big.Int, degree int, bound *big.Int) (*Polynomial, error) {
	coefficients := make([]*big.Int, degree+1)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i <= degree; i++ {
		n, err := RandomInt(bound)
		if err != nil {
			return nil, err
		}
		coefficients[i] = n
	}

	return &Polynomial{coefficients: coefficients}, nil
}

// RandomInt returns a uniform integer in [-bound, bound).
func RandomInt(bound *big.Int) (*big.Int, error) {
	width := new(big.Int).Lsh(bound, 1)
	n, err := rand.Int(rand.Reader, width)
	if err != nil {
		return nil, err
	}
	return n.Sub(n, bound), nil
}

// Secret returns f(0).
func (p *Polynomial) Secret() *big.Int {
	return new(big.Int).Set(p.coefficients[0])
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Evaluate computes f(x) with Horner's rule.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	value := new(big.Int)
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		value.Mul(value, x)
		value.Add(value, p.coefficients[i])
	}
	return value
}

// Shares samples the polynomial at the given abscissas.
func (p *Polynomial) Shares(xs ...int64) []types.Share {
	shares := make([]types.Share, len(xs))
	for i, x := range xs {
		bx := big.NewInt(x)
		share, err := types.NewShare(bx, p.Evaluate(bx))
		if err != nil {
			panic(err)
		}
		shares[i] = share
	}
	return shares
}

// DistinctAbscissas returns n distinct non-zero abscissas drawn in
// [-bound, bound).
func DistinctAbscissas(n int, bound int64) ([]int64, error) {
	seen := map[int64]struct{}{0: {}}
	xs := make([]int64, 0, n)
	for len(xs) < n {
		r, err := RandomInt(big.NewInt(bound))
		if err != nil {
			return nil, err
		}
		x := r.Int64()
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		xs = append(xs, x)
	}
	return xs, nil
}

// Share builds a share from int64 coordinates.
func Share(x, y int64) types.Share {
	share, err := types.NewShare(big.NewInt(x), big.NewInt(y))
	if err != nil {
		panic(err)
	}
	return share
}
