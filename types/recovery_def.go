package types

import "math/big"

// Recovery is the outcome of one reconstruction. Exactly one of Secret and
// Err is set.
type Recovery struct {
	ID          string // request identifier
	Source      string // file path, or a caller label for in-memory documents
	Fingerprint string // ShareSet.Fingerprint of the interpolated shares
	K           int
	Secret      *big.Int
	Err         error
	Cached      bool // served from the result table
}
