package types

import "math/big"

// Share is one (x, y) sample point of the secret polynomial. Values are
// immutable once built through NewShare.
type Share struct {
	x *big.Int
	y *big.Int
}

// ShareSet describes a loaded share document: the declared number of shares
// n, the threshold k and the shares found in the document.
type ShareSet struct {
	N      int
	K      int
	Shares []Share
}
