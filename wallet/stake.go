package wallet

import (
	"math"

	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

var keySlashedPool = []byte("slashed_pool")

// StakeLedger tracks per-address stake balances and the global pool of
// slashed funds. Balances are raw big-endian numbers; amounts never go
// negative and deposits are guarded against overflow.
type StakeLedger struct {
	stakes orm.RawBucket
	pool   orm.RawBucket
	cfg    ConfigBucket
}

// NewStakeLedger sets up stake persistence on top of the given
// configuration.
func NewStakeLedger(cfg ConfigBucket) StakeLedger {
	return StakeLedger{
		stakes: orm.NewRawBucket("stake"),
		pool:   orm.NewRawBucket("slashed"),
		cfg:    cfg,
	}
}

// Staked returns the current stake balance of the address.
func (s StakeLedger) Staked(db multisig.ReadOnlyKVStore, addr multisig.Address) uint64 {
	return uint64(orm.DecodeSequence(s.stakes.Get(db, addr)))
}

// Deposit adds to the stake balance of the address.
func (s StakeLedger) Deposit(db multisig.KVStore, addr multisig.Address, amount uint64) error {
	if amount == 0 {
		return errors.ErrAmount.New("zero deposit")
	}
	balance := s.Staked(db, addr)
	if amount > math.MaxUint64-balance {
		return errors.ErrOverflow.New("stake balance")
	}
	s.setStaked(db, addr, balance+amount)
	return nil
}

// Withdraw removes amount from the stake balance of the address. The
// remaining balance must not drop below floor, which callers set to the
// required stake for users whose signatures must stay valid.
func (s StakeLedger) Withdraw(db multisig.KVStore, addr multisig.Address, amount, floor uint64) error {
	if amount == 0 {
		return errors.ErrAmount.New("zero withdrawal")
	}
	balance := s.Staked(db, addr)
	if amount > balance {
		return errors.ErrAmount.Newf("withdraw %d exceeds balance %d", amount, balance)
	}
	if balance-amount < floor {
		return errors.ErrState.Newf("balance %d would drop below required stake %d", balance-amount, floor)
	}
	s.setStaked(db, addr, balance-amount)
	return nil
}

// HasEnoughStake returns true when the address holds at least the
// configured required stake.
func (s StakeLedger) HasEnoughStake(db multisig.ReadOnlyKVStore, addr multisig.Address) bool {
	return s.Staked(db, addr) >= s.cfg.RequiredStake(db)
}

// Slash moves the configured slash amount from the address into the
// global slashed pool. A balance below the penalty is an invariant
// violation: slashing may only target users that were required to hold
// at least that much.
func (s StakeLedger) Slash(db multisig.KVStore, addr multisig.Address) error {
	penalty := s.cfg.SlashAmount(db)
	if penalty == 0 {
		return nil
	}
	balance := s.Staked(db, addr)
	if balance < penalty {
		return errors.ErrInvariant.Newf("stake %d below slash amount %d", balance, penalty)
	}
	s.setStaked(db, addr, balance-penalty)
	pool := s.SlashedPool(db)
	if penalty > math.MaxUint64-pool {
		return errors.ErrOverflow.New("slashed pool")
	}
	s.pool.Set(db, keySlashedPool, orm.EncodeSequence(int64(pool+penalty)))
	return nil
}

// SlashedPool returns the total amount collected through slashing.
func (s StakeLedger) SlashedPool(db multisig.ReadOnlyKVStore) uint64 {
	return uint64(orm.DecodeSequence(s.pool.Get(db, keySlashedPool)))
}

func (s StakeLedger) setStaked(db multisig.KVStore, addr multisig.Address, balance uint64) {
	if balance == 0 {
		s.stakes.Delete(db, addr)
		return
	}
	s.stakes.Set(db, addr, orm.EncodeSequence(int64(balance)))
}
