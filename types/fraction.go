package types

import (
	"math/big"

	"golang.org/x/xerrors"
)

var (
	// ErrDivisionByZero is returned when a fraction is built with a zero
	// denominator.
	ErrDivisionByZero = xerrors.New("denominator cannot be zero")

	// ErrNotAnInteger is returned when an integer is extracted from a fraction
	// whose denominator is not one.
	ErrNotAnInteger = xerrors.New("fraction is not an integer")
)

var bigOne = big.NewInt(1)

// Fraction is an exact rational number over arbitrary precision integers.
// It is always kept in lowest terms with a positive denominator. Fractions are
// immutable: every operation returns a new value. The zero value is 0/1.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// ZeroFraction returns 0/1, the additive identity.
func ZeroFraction() Fraction {
	return Fraction{}
}

// NewFraction creates num/den in lowest terms. It fails with
// ErrDivisionByZero when den is zero.
func NewFraction(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num == nil {
		num = new(big.Int)
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FractionFromInt creates n/1.
func FractionFromInt(n *big.Int) Fraction {
	f, _ := NewFraction(n, bigOne)
	return f
}

// reduce takes ownership of num and den, den must be non-zero.
func reduce(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Fraction{num: num, den: den}
}

func (f Fraction) n() *big.Int {
	if f.num == nil {
		return new(big.Int)
	}
	return f.num
}

func (f Fraction) d() *big.Int {
	if f.den == nil {
		return bigOne
	}
	return f.den
}

// Add returns f + other.
func (f Fraction) Add(other Fraction) Fraction {
	num := new(big.Int).Mul(f.n(), other.d())
	num.Add(num, new(big.Int).Mul(other.n(), f.d()))
	den := new(big.Int).Mul(f.d(), other.d())
	return reduce(num, den)
}

// Mul returns f * other.
func (f Fraction) Mul(other Fraction) Fraction {
	num := new(big.Int).Mul(f.n(), other.n())
	den := new(big.Int).Mul(f.d(), other.d())
	return reduce(num, den)
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return reduce(new(big.Int).Neg(f.n()), new(big.Int).Set(f.d()))
}

// IsInt reports whether the denominator is one.
func (f Fraction) IsInt() bool {
	return f.d().Cmp(bigOne) == 0
}

// Int returns the value as an integer, or ErrNotAnInteger.
func (f Fraction) Int() (*big.Int, error) {
	if !f.IsInt() {
		return nil, xerrors.Errorf("%s: %w", f, ErrNotAnInteger)
	}
	return new(big.Int).Set(f.n()), nil
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.n())
}

// Denom returns a copy of the denominator, always positive.
func (f Fraction) Denom() *big.Int {
	return new(big.Int).Set(f.d())
}

// Cmp compares f and other and returns -1, 0 or +1.
func (f Fraction) Cmp(other Fraction) int {
	left := new(big.Int).Mul(f.n(), other.d())
	right := new(big.Int).Mul(other.n(), f.d())
	return left.Cmp(right)
}

// String returns "num" for integers and "num/den" otherwise.
func (f Fraction) String() string {
	if f.IsInt() {
		return f.n().String()
	}
	return f.n().String() + "/" + f.d().String()
}
