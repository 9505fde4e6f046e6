package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

// ActionLog is the append-only store of proposed actions and their
// signer sets. Action ids come from a sequence that is never reset, so
// an id is never reused even after the action it named was executed or
// discarded. Executed ids additionally leave a permanent marker behind.
type ActionLog struct {
	actions orm.Bucket
	signers orm.Bucket
	done    orm.RawBucket
	seq     orm.Sequence
}

// NewActionLog sets up action persistence.
func NewActionLog() ActionLog {
	return ActionLog{
		actions: orm.NewBucket("action"),
		signers: orm.NewBucket("signer"),
		done:    orm.NewRawBucket("done"),
		seq:     orm.NewSequence("action", "id"),
	}
}

func actionKey(id uint64) []byte {
	return orm.EncodeSequence(int64(id))
}

// Append stores a new action under a fresh id. A non-zero signerID
// records the proposer's own signature along with the proposal.
func (l ActionLog) Append(db multisig.KVStore, action *Action, signerID uint64) (uint64, error) {
	id := uint64(l.seq.NextInt(db))
	key := actionKey(id)
	if err := l.actions.Put(db, key, action); err != nil {
		return 0, err
	}
	if signerID != 0 {
		set := &SignerSet{Ids: []uint64{signerID}}
		if err := l.signers.Put(db, key, set); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Pending returns true while the action slot is occupied.
func (l ActionLog) Pending(db multisig.ReadOnlyKVStore, id uint64) bool {
	return l.actions.Has(db, actionKey(id))
}

// Load returns the pending action stored under the id.
func (l ActionLog) Load(db multisig.ReadOnlyKVStore, id uint64) (*Action, error) {
	var action Action
	err := l.actions.One(db, actionKey(id), &action)
	if errors.ErrNotFound.Is(err) {
		return nil, errors.ErrState.Newf("action %d does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// SignerIDs returns the raw signer set of the action, not filtered for
// current eligibility. Missing actions have an empty set.
func (l ActionLog) SignerIDs(db multisig.ReadOnlyKVStore, id uint64) []uint64 {
	var set SignerSet
	if err := l.signers.One(db, actionKey(id), &set); err != nil {
		return nil
	}
	return set.Ids
}

// AddSigner records a signature. Signing twice is a no-op.
func (l ActionLog) AddSigner(db multisig.KVStore, id, signerID uint64) error {
	key := actionKey(id)
	var set SignerSet
	if err := l.signers.One(db, key, &set); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	if !set.Add(signerID) {
		return nil
	}
	return l.signers.Put(db, key, &set)
}

// RemoveSigner withdraws a signature. Removing an absent signature is a
// no-op. The signer set record is dropped once empty.
func (l ActionLog) RemoveSigner(db multisig.KVStore, id, signerID uint64) error {
	key := actionKey(id)
	var set SignerSet
	if err := l.signers.One(db, key, &set); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil
		}
		return err
	}
	if !set.Remove(signerID) {
		return nil
	}
	if len(set.Ids) == 0 {
		l.signers.Delete(db, key)
		return nil
	}
	return l.signers.Put(db, key, &set)
}

// Clear frees the action slot and its signer set. The id stays burned.
func (l ActionLog) Clear(db multisig.KVStore, id uint64) {
	key := actionKey(id)
	l.actions.Delete(db, key)
	l.signers.Delete(db, key)
}

// MarkExecuted leaves the permanent execution marker for the id.
func (l ActionLog) MarkExecuted(db multisig.KVStore, id uint64) {
	l.done.Set(db, actionKey(id), []byte{1})
}

// WasExecuted returns true if the id was ever executed.
func (l ActionLog) WasExecuted(db multisig.ReadOnlyKVStore, id uint64) bool {
	return l.done.Has(db, actionKey(id))
}

// LastIndex returns the highest action id issued so far.
func (l ActionLog) LastIndex(db multisig.ReadOnlyKVStore) uint64 {
	latest, _ := l.seq.Latest(db)
	return uint64(latest)
}
