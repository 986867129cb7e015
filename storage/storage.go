// Package storage provides the blob persistence port the stores write
// through. Each collection is kept as a whole JSON array under a fixed
// key, mirroring the browser local-storage layout the app started with.
package storage

import "errors"

// ErrStorage indicates the underlying persistence medium is unavailable
// or corrupt. Driver errors wrap it so callers can match with errors.Is.
var ErrStorage = errors.New("storage failure")

// Store is the key-value blob port. Get reports ok=false when the key
// has never been written.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}
