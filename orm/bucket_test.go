package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/store"
)

func TestBucketPutOne(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnt")

	var missing Counter
	err := bucket.One(db, []byte("x"), &missing)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.False(t, bucket.Has(db, []byte("x")))

	require.NoError(t, bucket.Put(db, []byte("x"), &Counter{Count: 42}))
	assert.True(t, bucket.Has(db, []byte("x")))

	var loaded Counter
	require.NoError(t, bucket.One(db, []byte("x"), &loaded))
	assert.Equal(t, int64(42), loaded.Count)

	bucket.Delete(db, []byte("x"))
	assert.False(t, bucket.Has(db, []byte("x")))
}

func TestBucketPutRejectsInvalidModel(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnt")

	err := bucket.Put(db, []byte("x"), &Counter{Count: -1})
	assert.True(t, errors.ErrInvariant.Is(err))
	assert.False(t, bucket.Has(db, []byte("x")))
}

func TestBucketsDoNotOverlap(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("one")
	two := NewBucket("two")

	require.NoError(t, one.Put(db, []byte("k"), &Counter{Count: 1}))
	require.NoError(t, two.Put(db, []byte("k"), &Counter{Count: 2}))

	var a, b Counter
	require.NoError(t, one.One(db, []byte("k"), &a))
	require.NoError(t, two.One(db, []byte("k"), &b))
	assert.Equal(t, int64(1), a.Count)
	assert.Equal(t, int64(2), b.Count)
}

func TestBucketNameValidation(t *testing.T) {
	assert.Panics(t, func() { NewBucket("UPPER") })
	assert.Panics(t, func() { NewBucket("ab") })
	assert.Panics(t, func() { NewBucket("waytoolongname") })
	assert.NotPanics(t, func() { NewBucket("good_name") })
}

func TestRawBucketPrefixIterator(t *testing.T) {
	db := store.MemStore()
	raw := NewRawBucket("idx")

	raw.Set(db, []byte{1, 0, 0xa}, []byte("first"))
	raw.Set(db, []byte{1, 0, 0xb}, []byte("second"))
	raw.Set(db, []byte{2, 0, 0xa}, []byte("other batch"))

	it := raw.PrefixIterator(db, []byte{1, 0})
	defer it.Close()

	var keys [][]byte
	var values [][]byte
	for ; it.Valid(); it.Next() {
		keys = append(keys, raw.StripPrefix(it.Key()))
		values = append(values, it.Value())
	}
	require.Equal(t, [][]byte{{1, 0, 0xa}, {1, 0, 0xb}}, keys)
	require.Equal(t, [][]byte{[]byte("first"), []byte("second")}, values)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte{1, 3}, prefixEnd([]byte{1, 2}))
	assert.Equal(t, []byte{2}, prefixEnd([]byte{1, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff, 0xff}))
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("cnt", "id")

	val, raw := seq.Latest(db)
	assert.Equal(t, int64(0), val)
	assert.Nil(t, raw)

	assert.Equal(t, int64(1), seq.NextInt(db))
	assert.Equal(t, int64(2), seq.NextInt(db))

	bz := seq.NextVal(db)
	assert.Equal(t, int64(3), DecodeSequence(bz))

	val, _ = seq.Latest(db)
	assert.Equal(t, int64(3), val)

	// Sequences with different names do not interfere.
	other := NewSequence("cnt", "user")
	assert.Equal(t, int64(1), other.NextInt(db))
}
