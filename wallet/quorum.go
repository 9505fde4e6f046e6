package wallet

import (
	multisig "github.com/iov-one/multisig"
)

// QuorumEngine decides whether an action gathered enough support.
// Signatures are stored as they arrive but judged only at evaluation
// time: a recorded signer counts only if they still hold the board
// member role and still meet the stake requirement at the moment of the
// check. Membership and stake changes therefore invalidate or revive
// signatures without touching the stored signer sets.
type QuorumEngine struct {
	log    ActionLog
	reg    UserRegistry
	roles  RoleStore
	stakes StakeLedger
	cfg    ConfigBucket
}

// NewQuorumEngine wires the evaluation over the engine components.
func NewQuorumEngine(log ActionLog, reg UserRegistry, roles RoleStore, stakes StakeLedger, cfg ConfigBucket) QuorumEngine {
	return QuorumEngine{log: log, reg: reg, roles: roles, stakes: stakes, cfg: cfg}
}

// ValidSignerCount returns how many recorded signers of the action are
// eligible right now.
func (q QuorumEngine) ValidSignerCount(db multisig.ReadOnlyKVStore, id uint64) uint32 {
	var valid uint32
	for _, signerID := range q.log.SignerIDs(db, id) {
		if q.eligible(db, signerID) {
			valid++
		}
	}
	return valid
}

// QuorumReached returns true once the valid signer count meets the
// configured quorum.
func (q QuorumEngine) QuorumReached(db multisig.ReadOnlyKVStore, id uint64) bool {
	return q.ValidSignerCount(db, id) >= q.cfg.Quorum(db)
}

func (q QuorumEngine) eligible(db multisig.ReadOnlyKVStore, signerID uint64) bool {
	if !q.roles.RoleOf(db, signerID).CanSign() {
		return false
	}
	addr := q.reg.Address(db, signerID)
	if addr == nil {
		return false
	}
	return q.stakes.HasEnoughStake(db, addr)
}
