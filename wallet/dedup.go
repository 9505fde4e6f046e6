package wallet

import (
	"crypto/sha256"

	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

// DedupIndex rejects duplicate proposals of batch-scoped actions. Every
// tracked proposal is keyed by its batch id and a fingerprint of its
// canonical serialized content, and mapped to the pending action id.
// When one action for a batch executes, the whole batch prefix is
// invalidated: every sibling proposal for that batch id is dropped from
// the log along with its index entries.
//
// Status updates and transfer batches use separate indexes, so the two
// action families never collide on a shared batch id.
type DedupIndex struct {
	idx orm.RawBucket
}

// NewDedupIndex creates an index under its own bucket name.
func NewDedupIndex(name string) DedupIndex {
	return DedupIndex{idx: orm.NewRawBucket(name)}
}

// Fingerprint hashes the canonical serialized form of the action.
func Fingerprint(action *Action) ([]byte, error) {
	bz, err := action.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "fingerprint")
	}
	sum := sha256.Sum256(bz)
	return sum[:], nil
}

func (d DedupIndex) key(batchID uint64, fingerprint []byte) []byte {
	out := make([]byte, 8+len(fingerprint))
	copy(out, orm.EncodeSequence(int64(batchID)))
	copy(out[8:], fingerprint)
	return out
}

// Lookup returns the pending action id proposed for this batch and
// content, if any.
func (d DedupIndex) Lookup(db multisig.ReadOnlyKVStore, batchID uint64, fingerprint []byte) (uint64, bool) {
	raw := d.idx.Get(db, d.key(batchID, fingerprint))
	if raw == nil {
		return 0, false
	}
	return uint64(orm.DecodeSequence(raw)), true
}

// Record indexes a fresh proposal. An existing entry for the same batch
// and content means the proposal is a duplicate and must be rejected.
func (d DedupIndex) Record(db multisig.KVStore, batchID uint64, fingerprint []byte, actionID uint64) error {
	key := d.key(batchID, fingerprint)
	if raw := d.idx.Get(db, key); raw != nil {
		return errors.ErrDuplicate.Newf("batch %d already proposed as action %d", batchID, orm.DecodeSequence(raw))
	}
	d.idx.Set(db, key, orm.EncodeSequence(int64(actionID)))
	return nil
}

// InvalidateBatch drops every index entry for the batch id and clears
// the pending actions they point to. Called when one action for the
// batch executes; the executed action's own slot is already free, so
// clearing it again is harmless.
func (d DedupIndex) InvalidateBatch(db multisig.KVStore, log ActionLog, batchID uint64) {
	prefix := orm.EncodeSequence(int64(batchID))
	it := d.idx.PrefixIterator(db, prefix)
	var keys [][]byte
	var actionIDs []uint64
	for ; it.Valid(); it.Next() {
		keys = append(keys, d.idx.StripPrefix(it.Key()))
		actionIDs = append(actionIDs, uint64(orm.DecodeSequence(it.Value())))
	}
	it.Close()
	for i, key := range keys {
		d.idx.Delete(db, key)
		log.Clear(db, actionIDs[i])
	}
}
