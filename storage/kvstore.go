package storage

import "sort"

// Copyable values are deep-copied by KVStore.Copy.
type Copyable interface {
	Copy() Copyable
}

// KVStore is a key/value store. Implementations are not required to be
// thread-safe.
type KVStore interface {
	Get(key string) (interface{}, bool)
	Put(key string, value interface{}) error
	Del(key string) error
	For(func(key string, value interface{}) error) error
	Len() int
	Copy() KVStore
}

// BasicKV is an in-memory KVStore. For visits keys in sorted order.
type BasicKV struct {
	KVStore

	store map[string]interface{}
}

func NewBasicKV() *BasicKV {
	return &BasicKV{
		store: make(map[string]interface{}),
	}
}

func (kv *BasicKV) Get(key string) (interface{}, bool) {
	value, ok := kv.store[key]
	return value, ok
}

func (kv *BasicKV) Put(key string, value interface{}) error {
	kv.store[key] = value
	return nil
}

func (kv *BasicKV) Del(key string) error {
	delete(kv.store, key)
	return nil
}

func (kv *BasicKV) For(action func(key string, value interface{}) error) error {
	for _, k := range kv.sortedKeys() {
		err := action(k, kv.store[k])
		if err != nil {
			return err
		}
	}
	return nil
}

func (kv *BasicKV) Len() int {
	return len(kv.store)
}

func (kv *BasicKV) Copy() KVStore {
	cp := NewBasicKV()
	for k, v := range kv.store {
		switch vv := v.(type) {
		case Copyable:
			cp.Put(k, vv.Copy())
		default:
			cp.Put(k, v)
		}
	}
	return cp
}

func (kv *BasicKV) sortedKeys() []string {
	sorted := make([]string, 0, len(kv.store))
	for k := range kv.store {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	return sorted
}
