// Package kv defines the key-value persistence contract and the best-effort
// bridge the application reads and writes JSON state snapshots through.
package kv

import (
	"encoding/json"
	"sync/atomic"

	"github.com/kidsmentor/portal/core"
)

// Store is a raw key-value backend holding JSON-serialized values under
// fixed keys. Absent keys are signaled through the found flag, not an error.
type Store interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
	Delete(key string) error
	// Keys lists every stored key (admin export).
	Keys() ([]string, error)
	Close() error
}

// maxWriteFailures is how many backend writes may fail in a row before the
// bridge reports the backend poisoned via Err.
const maxWriteFailures = 3

// Bridge wraps a Store with the portal's best-effort persistence policy:
// any read or write failure (backend error, corrupt JSON) is logged and
// degraded - absent data for reads, a silent no-op for writes. Nothing is
// ever raised to the caller; owners that must not keep serving over a dead
// backend poll Err instead.
type Bridge struct {
	store    Store
	log      core.Logger
	failures int32 // consecutive backend write failures
}

func NewBridge(store Store, log core.Logger) *Bridge {
	return &Bridge{store: store, log: log}
}

// Load unmarshals the value stored under key into dst and reports whether
// usable data was found.
func (b *Bridge) Load(key string, dst interface{}) bool {
	data, found, err := b.store.Load(key)
	if err != nil {
		b.log.Error("kv: loading "+key, err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		b.log.Error("kv: corrupt value under "+key, err)
		return false
	}
	return true
}

// Save marshals v and stores it under key.
func (b *Bridge) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		b.log.Error("kv: marshaling "+key, err)
		return
	}
	if err := b.store.Save(key, data); err != nil {
		atomic.AddInt32(&b.failures, 1)
		b.log.Error("kv: saving "+key, err)
		return
	}
	atomic.StoreInt32(&b.failures, 0)
}

// Err returns a shutdown error once the backend has rejected several writes
// in a row; a single failure stays a logged no-op per the best-effort
// contract. Any successful write resets the count.
func (b *Bridge) Err() error {
	if atomic.LoadInt32(&b.failures) >= maxWriteFailures {
		return core.NewShutdownError("kv: storage backend unavailable")
	}
	return nil
}
