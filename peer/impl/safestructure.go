package impl

import (
	"math/big"
	"sync"

	"go.dedis.ch/sharerecovery/storage"
	"go.dedis.ch/sharerecovery/types"
)

// SafeResultTable implements a thread-safe table of recoveries keyed by share
// set fingerprint
type SafeResultTable struct {
	*sync.RWMutex
	table storage.KVStore
}

func (t *SafeResultTable) add(key string, rec types.Recovery) {
	t.Lock()
	defer t.Unlock()
	t.table.Put(key, rec.Copy())
}
func (t *SafeResultTable) get(key string) (types.Recovery, bool) {
	t.RLock()
	defer t.RUnlock()
	val, ok := t.table.Get(key)
	if !ok {
		return types.Recovery{}, false
	}
	rec := *val.(*types.Recovery)
	rec.Secret = new(big.Int).Set(rec.Secret)
	return rec, true
}
func (t *SafeResultTable) getAll() []types.Recovery {
	t.RLock()
	snapshot := t.table.Copy()
	t.RUnlock()

	recs := make([]types.Recovery, 0, snapshot.Len())
	snapshot.For(func(key string, value interface{}) error {
		recs = append(recs, *value.(*types.Recovery))
		return nil
	})
	return recs
}
func NewSafeResultTable() *SafeResultTable {
	return &SafeResultTable{&sync.RWMutex{}, storage.NewBasicKV()}
}
