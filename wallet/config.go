package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/orm"
)

// Keys of the engine configuration records.
var (
	keyQuorum        = []byte("quorum")
	keyRequiredStake = []byte("required_stake")
	keySlashAmount   = []byte("slash_amount")
	keyPaused        = []byte("paused")
	keyInitialized   = []byte("initialized")
)

// ConfigBucket holds the engine wide settings written at initialization
// and later changed only through executed actions.
type ConfigBucket struct {
	raw orm.RawBucket
}

// NewConfigBucket sets up configuration persistence.
func NewConfigBucket() ConfigBucket {
	return ConfigBucket{raw: orm.NewRawBucket("cfg")}
}

// Quorum returns how many valid signatures an action needs.
func (c ConfigBucket) Quorum(db multisig.ReadOnlyKVStore) uint32 {
	return uint32(orm.DecodeSequence(c.raw.Get(db, keyQuorum)))
}

// SetQuorum stores a new quorum value.
func (c ConfigBucket) SetQuorum(db multisig.KVStore, quorum uint32) {
	c.raw.Set(db, keyQuorum, orm.EncodeSequence(int64(quorum)))
}

// RequiredStake returns the stake a board member must hold for their
// signature to count.
func (c ConfigBucket) RequiredStake(db multisig.ReadOnlyKVStore) uint64 {
	return uint64(orm.DecodeSequence(c.raw.Get(db, keyRequiredStake)))
}

// SetRequiredStake stores the stake requirement.
func (c ConfigBucket) SetRequiredStake(db multisig.KVStore, amount uint64) {
	c.raw.Set(db, keyRequiredStake, orm.EncodeSequence(int64(amount)))
}

// SlashAmount returns how much stake a slashed user loses.
func (c ConfigBucket) SlashAmount(db multisig.ReadOnlyKVStore) uint64 {
	return uint64(orm.DecodeSequence(c.raw.Get(db, keySlashAmount)))
}

// SetSlashAmount stores the slashing penalty.
func (c ConfigBucket) SetSlashAmount(db multisig.KVStore, amount uint64) {
	c.raw.Set(db, keySlashAmount, orm.EncodeSequence(int64(amount)))
}

// Paused returns true while the engine accepts only slashing actions.
func (c ConfigBucket) Paused(db multisig.ReadOnlyKVStore) bool {
	return c.raw.Has(db, keyPaused)
}

// SetPaused flips the pause flag.
func (c ConfigBucket) SetPaused(db multisig.KVStore, paused bool) {
	if paused {
		c.raw.Set(db, keyPaused, []byte{1})
	} else {
		c.raw.Delete(db, keyPaused)
	}
}

// Initialized returns true once Init completed.
func (c ConfigBucket) Initialized(db multisig.ReadOnlyKVStore) bool {
	return c.raw.Has(db, keyInitialized)
}

// SetInitialized marks the engine as set up.
func (c ConfigBucket) SetInitialized(db multisig.KVStore) {
	c.raw.Set(db, keyInitialized, []byte{1})
}
