package types

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

// ErrNilCoordinate is returned when a share is built without x or y.
var ErrNilCoordinate = xerrors.New("share coordinates must not be nil")

// -----------------------------------------------------------------------------
// Share

// NewShare creates a share from copies of x and y.
func NewShare(x, y *big.Int) (Share, error) {
	if x == nil || y == nil {
		return Share{}, ErrNilCoordinate
	}
	return Share{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}, nil
}

// Valid reports whether both coordinates are set. The zero Share is not
// valid.
func (s Share) Valid() bool {
	return s.x != nil && s.y != nil
}

// X returns a copy of the abscissa.
func (s Share) X() *big.Int {
	return new(big.Int).Set(s.xOrZero())
}

// Y returns a copy of the ordinate.
func (s Share) Y() *big.Int {
	return new(big.Int).Set(s.yOrZero())
}

func (s Share) xOrZero() *big.Int {
	if s.x == nil {
		return new(big.Int)
	}
	return s.x
}

func (s Share) yOrZero() *big.Int {
	if s.y == nil {
		return new(big.Int)
	}
	return s.y
}

// String implements fmt.Stringer.
func (s Share) String() string {
	return fmt.Sprintf("{share x=%s y=%s}", s.xOrZero(), s.yOrZero())
}

// -----------------------------------------------------------------------------
// ShareSet

// SortByX orders the shares by ascending abscissa. Equal abscissas keep their
// document order.
func (s *ShareSet) SortByX() {
	sort.SliceStable(s.Shares, func(i, j int) bool {
		return s.Shares[i].xOrZero().Cmp(s.Shares[j].xOrZero()) < 0
	})
}

// Select returns the first k shares of the set. It returns all the shares
// when fewer than k are available, the interpolator reports the shortage.
func (s ShareSet) Select(k int) []Share {
	if k < 0 {
		k = 0
	}
	if k > len(s.Shares) {
		k = len(s.Shares)
	}
	selected := make([]Share, k)
	copy(selected, s.Shares[:k])
	return selected
}

// Fingerprint returns the Keccak-256 hash of the threshold and the first k
// shares, in hex. Two sets that select the same points under the same
// threshold share a fingerprint.
func (s ShareSet) Fingerprint(k int) string {
	chunks := [][]byte{[]byte(fmt.Sprintf("k=%d;", k))}
	for _, share := range s.Select(k) {
		chunks = append(chunks, []byte(fmt.Sprintf("%s:%s;", share.xOrZero(), share.yOrZero())))
	}
	return crypto.Keccak256Hash(chunks...).Hex()
}

// String implements fmt.Stringer.
func (s ShareSet) String() string {
	return fmt.Sprintf("{shareset n=%d k=%d found=%d}", s.N, s.K, len(s.Shares))
}
