package types

import (
	"fmt"
	"math/big"

	"go.dedis.ch/sharerecovery/storage"
)

// Failed reports whether the recovery ended with an error.
func (r Recovery) Failed() bool {
	return r.Err != nil
}

// Copy implements storage.Copyable.
func (r *Recovery) Copy() storage.Copyable {
	cp := *r
	if r.Secret != nil {
		cp.Secret = new(big.Int).Set(r.Secret)
	}
	return &cp
}

// String implements fmt.Stringer.
func (r Recovery) String() string {
	if r.Failed() {
		return fmt.Sprintf("{recovery %s of %s failed: %v}", r.ID, r.Source, r.Err)
	}
	return fmt.Sprintf("{recovery %s of %s: k=%d secret=%s}", r.ID, r.Source, r.K, r.Secret)
}
