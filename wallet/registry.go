package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

// UserRegistry maps addresses to dense numeric user ids and back. Ids
// start at 1 and are never reused, so zero can serve as "no user"
// throughout the engine. Once assigned, an id keeps its address forever,
// even after the user loses all roles.
type UserRegistry struct {
	ids   orm.RawBucket
	addrs orm.RawBucket
	seq   orm.Sequence
}

// NewUserRegistry sets up the two-way index.
func NewUserRegistry() UserRegistry {
	return UserRegistry{
		ids:   orm.NewRawBucket("usr_id"),
		addrs: orm.NewRawBucket("usr_adr"),
		seq:   orm.NewSequence("usr", "id"),
	}
}

// ID returns the user id of the address, zero if never registered.
func (r UserRegistry) ID(db multisig.ReadOnlyKVStore, addr multisig.Address) uint64 {
	raw := r.ids.Get(db, addr)
	if raw == nil {
		return 0
	}
	return uint64(orm.DecodeSequence(raw))
}

// Address returns the address registered under the user id, nil if the
// id was never issued.
func (r UserRegistry) Address(db multisig.ReadOnlyKVStore, id uint64) multisig.Address {
	return multisig.Address(r.addrs.Get(db, orm.EncodeSequence(int64(id))))
}

// GetOrCreate returns the user id of the address, issuing a fresh one on
// first sight. The second return value is true when a new id was issued.
func (r UserRegistry) GetOrCreate(db multisig.KVStore, addr multisig.Address) (uint64, bool) {
	if id := r.ID(db, addr); id != 0 {
		return id, false
	}
	id := r.seq.NextInt(db)
	key := orm.EncodeSequence(id)
	r.ids.Set(db, addr, key)
	r.addrs.Set(db, key, addr)
	return uint64(id), true
}

// Count returns how many user ids were issued so far. Ids form the dense
// range [1, Count].
func (r UserRegistry) Count(db multisig.ReadOnlyKVStore) uint64 {
	latest, _ := r.seq.Latest(db)
	return uint64(latest)
}

// getOrCreateAll registers a list of addresses, rejecting duplicate
// entries within the list itself.
func (r UserRegistry) getOrCreateAll(db multisig.KVStore, addrs []multisig.Address) ([]uint64, error) {
	ids := make([]uint64, len(addrs))
	seen := make(map[string]struct{}, len(addrs))
	for i, addr := range addrs {
		if err := addr.Validate(); err != nil {
			return nil, errors.Wrapf(err, "address %d", i)
		}
		if _, ok := seen[string(addr)]; ok {
			return nil, errors.ErrDuplicate.Newf("address %s", addr)
		}
		seen[string(addr)] = struct{}{}
		ids[i], _ = r.GetOrCreate(db, addr)
	}
	return ids, nil
}
