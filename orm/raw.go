package orm

import (
	"fmt"

	multisig "github.com/iov-one/multisig"
)

// RawBucket is a prefixed subspace of the DB holding raw byte records.
// It is used for dense integer maps (ids, counters, balances) where a
// protobuf envelope would only add weight, and for lookup indexes.
//
// A nil value result always means "absent"; an empty record is stored as
// a one byte sentinel by the caller when presence itself is the
// information.
type RawBucket struct {
	name   string
	prefix []byte
}

// NewRawBucket creates a raw bucket with the given name.
func NewRawBucket(name string) RawBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return RawBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// DBKey is the full key we store in the db, including prefix.
func (b RawBucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get returns the raw record under the key, nil if absent.
func (b RawBucket) Get(db multisig.ReadOnlyKVStore, key []byte) []byte {
	return db.Get(b.DBKey(key))
}

// Has returns true if a record is stored under the key.
func (b RawBucket) Has(db multisig.ReadOnlyKVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Set stores the raw record under the key.
func (b RawBucket) Set(db multisig.KVStore, key, value []byte) {
	db.Set(b.DBKey(key), value)
}

// Delete removes the record under the key.
func (b RawBucket) Delete(db multisig.KVStore, key []byte) {
	db.Delete(b.DBKey(key))
}

// PrefixIterator iterates in ascending order over all records whose
// in-bucket key starts with given prefix. Keys yielded by the iterator
// are full db keys; use StripPrefix to recover the in-bucket key.
func (b RawBucket) PrefixIterator(db multisig.ReadOnlyKVStore, prefix []byte) multisig.Iterator {
	start := b.DBKey(prefix)
	return db.Iterator(start, prefixEnd(start))
}

// StripPrefix recovers the in-bucket key from a full db key.
func (b RawBucket) StripPrefix(dbKey []byte) []byte {
	return dbKey[len(b.prefix):]
}

// prefixEnd returns the lowest key that is above every key starting with
// given prefix, or nil when the prefix is the highest possible.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
