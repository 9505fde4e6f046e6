/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of object and has a primary index. Buckets never
overlap as long as their names differ.
*/
package orm

import (
	"fmt"
	"regexp"

	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored in a Bucket.
type Model interface {
	multisig.Persistent

	// Validate returns an error if the model is not in a valid state to
	// save to the db (field missing, out of range, ...).
	Validate() error
}

// Bucket is a generic holder that stores protobuf models under a
// prefixed subspace of the DB.
//
// This is a generic building block that should generally be embedded in
// a type-safe wrapper to ensure all data is the same type.
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix. We copy
// into a new array rather than use append, as we don't want consecutive
// calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One loads the model stored under the key into dest. It returns
// ErrNotFound when no entity is stored under the key.
func (b Bucket) One(db multisig.ReadOnlyKVStore, key []byte, dest Model) error {
	bz := db.Get(b.DBKey(key))
	if bz == nil {
		return errors.ErrNotFound.Newf("bucket %s key %X", b.name, key)
	}
	if err := dest.Unmarshal(bz); err != nil {
		return errors.Wrapf(err, "bucket %s key %X", b.name, key)
	}
	return nil
}

// Has returns true if an entity is stored under the key.
func (b Bucket) Has(db multisig.ReadOnlyKVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Put validates and saves given model under the key.
func (b Bucket) Put(db multisig.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	bz, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot serialize model")
	}
	db.Set(b.DBKey(key), bz)
	return nil
}

// Delete removes the value under the key. Deleting a non-existing key is
// a noop.
func (b Bucket) Delete(db multisig.KVStore, key []byte) {
	db.Delete(b.DBKey(key))
}

// Sequence returns a Sequence scoped to this bucket by name.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
