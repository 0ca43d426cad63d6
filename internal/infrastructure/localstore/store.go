// Package localstore is a durable local key-value store of JSON documents,
// the persistence layer behind the record repositories. Values are whole
// collections serialized as single JSON documents; every mutation rewrites
// its key in full.
package localstore

// Store loads and saves JSON documents under string keys.
//
// Load decodes the value stored under key into the pointer ins. It reports
// found=false when the key is absent or the stored payload does not decode;
// corruption is masked so callers always fall back to a defined zero value.
// Save serializes value and overwrites whatever was stored under key.
type Store interface {
	Load(key string, into any) (found bool, err error)
	Save(key string, value any) error
}
