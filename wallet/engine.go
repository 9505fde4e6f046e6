package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
)

// Engine is the role-gated, quorum-based action authorization engine.
// Board members and proposers accumulate actions in the log, board
// members with enough stake back them with signatures, and any of them
// may trigger execution once the quorum of currently valid signatures is
// reached.
//
// Every state-mutating operation runs inside a cache wrap of the backing
// store: on any error the wrap is discarded and no partial effect
// survives.
type Engine struct {
	db    multisig.CacheableKVStore
	owner multisig.Address

	reg    UserRegistry
	roles  RoleStore
	stakes StakeLedger
	log    ActionLog
	quorum QuorumEngine
	cfg    ConfigBucket
	gw     *Gateway
	exec   *ActionExecutor

	statusDedup   DedupIndex
	transferDedup DedupIndex
}

// NewEngine wires an engine over the backing store. The owner is the
// operator account allowed to pause and unpause; it holds no other
// privileges. Delegated services are bound on the gateway afterwards.
func NewEngine(db multisig.CacheableKVStore, owner multisig.Address) *Engine {
	cfg := NewConfigBucket()
	reg := NewUserRegistry()
	roles := NewRoleStore()
	stakes := NewStakeLedger(cfg)
	log := NewActionLog()
	quorum := NewQuorumEngine(log, reg, roles, stakes, cfg)
	gw := NewGateway()
	statusDedup := NewDedupIndex("dup_st")
	transferDedup := NewDedupIndex("dup_tx")
	return &Engine{
		db:            db,
		owner:         owner.Clone(),
		reg:           reg,
		roles:         roles,
		stakes:        stakes,
		log:           log,
		quorum:        quorum,
		cfg:           cfg,
		gw:            gw,
		exec:          NewActionExecutor(reg, roles, stakes, log, quorum, cfg, gw, statusDedup, transferDedup),
		statusDedup:   statusDedup,
		transferDedup: transferDedup,
	}
}

// Gateway exposes the external call gateway for service binding.
func (e *Engine) Gateway() *Gateway {
	return e.gw
}

// atomic runs fn inside a cache wrap, writing on success and discarding
// every change on error.
func (e *Engine) atomic(fn func(db multisig.KVStore) error) error {
	cache := e.db.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}

// Init sets up the initial board, quorum and stake parameters. It can
// run only once.
func (e *Engine) Init(requiredStake, slashAmount uint64, quorum uint32, board []multisig.Address) error {
	return e.atomic(func(db multisig.KVStore) error {
		if e.cfg.Initialized(db) {
			return errors.ErrState.New("already initialized")
		}
		if len(board) == 0 {
			return errors.ErrInput.New("board must have at least one member")
		}
		if int(quorum) > len(board) {
			return errors.ErrInvariant.Newf("quorum %d exceeds board size %d", quorum, len(board))
		}
		if slashAmount > requiredStake {
			return errors.ErrInput.Newf("slash amount %d exceeds required stake %d", slashAmount, requiredStake)
		}
		if _, err := e.reg.getOrCreateAll(db, board); err != nil {
			return errors.Wrap(err, "board")
		}
		for _, addr := range board {
			if err := e.roles.ChangeUserRole(db, e.reg, addr, RoleBoardMember); err != nil {
				return err
			}
		}
		e.cfg.SetRequiredStake(db, requiredStake)
		e.cfg.SetSlashAmount(db, slashAmount)
		e.cfg.SetQuorum(db, quorum)
		e.cfg.SetInitialized(db)
		return nil
	})
}

// Stake deposits stake for a board member.
func (e *Engine) Stake(caller multisig.Address, amount uint64) error {
	return e.atomic(func(db multisig.KVStore) error {
		if e.roles.RoleOfAddress(db, e.reg, caller) != RoleBoardMember {
			return errors.ErrUnauthorized.New("only board members can stake")
		}
		return e.stakes.Deposit(db, caller, amount)
	})
}

// Unstake withdraws stake. A user still holding the board member role
// may not drop below the required stake; users who lost the role may
// drain their balance completely.
func (e *Engine) Unstake(caller multisig.Address, amount uint64) error {
	return e.atomic(func(db multisig.KVStore) error {
		var floor uint64
		if e.roles.RoleOfAddress(db, e.reg, caller) == RoleBoardMember {
			floor = e.cfg.RequiredStake(db)
		}
		return e.stakes.Withdraw(db, caller, amount, floor)
	})
}

// propose appends the action, auto-signing when the caller's role can
// sign. Must run inside an atomic block.
func (e *Engine) propose(db multisig.KVStore, caller multisig.Address, action *Action) (uint64, error) {
	role := e.roles.RoleOfAddress(db, e.reg, caller)
	if !role.CanPropose() {
		return 0, errors.ErrUnauthorized.New("only board members and proposers can propose")
	}
	if err := action.Validate(); err != nil {
		return 0, err
	}
	var signerID uint64
	if role.CanSign() {
		signerID = e.reg.ID(db, caller)
	}
	return e.log.Append(db, action, signerID)
}

// proposeAtomic is the atomic wrapper shared by the simple proposal
// endpoints.
func (e *Engine) proposeAtomic(caller multisig.Address, action *Action) (uint64, error) {
	var id uint64
	err := e.atomic(func(db multisig.KVStore) error {
		var err error
		id, err = e.propose(db, caller, action)
		return err
	})
	return id, err
}

// ProposeNothing proposes a no-op action.
func (e *Engine) ProposeNothing(caller multisig.Address) (uint64, error) {
	return e.proposeAtomic(caller, nothingAction())
}

// ProposeAddBoardMember proposes granting the board member role.
func (e *Engine) ProposeAddBoardMember(caller, member multisig.Address) (uint64, error) {
	return e.proposeAtomic(caller, addBoardMemberAction(member))
}

// ProposeAddProposer proposes granting the proposer role.
func (e *Engine) ProposeAddProposer(caller, proposer multisig.Address) (uint64, error) {
	return e.proposeAtomic(caller, addProposerAction(proposer))
}

// ProposeRemoveUser proposes stripping all roles from a user.
func (e *Engine) ProposeRemoveUser(caller, user multisig.Address) (uint64, error) {
	return e.proposeAtomic(caller, removeUserAction(user))
}

// ProposeSlashUser proposes removing a board member and confiscating the
// slash amount from their stake. The target must currently hold the
// board member role.
func (e *Engine) ProposeSlashUser(caller, user multisig.Address) (uint64, error) {
	var id uint64
	err := e.atomic(func(db multisig.KVStore) error {
		if e.roles.RoleOfAddress(db, e.reg, user) != RoleBoardMember {
			return errors.ErrInput.New("can only slash board members")
		}
		var err error
		id, err = e.propose(db, caller, slashUserAction(user))
		return err
	})
	return id, err
}

// ProposeChangeQuorum proposes a new quorum value.
func (e *Engine) ProposeChangeQuorum(caller multisig.Address, newQuorum uint32) (uint64, error) {
	return e.proposeAtomic(caller, changeQuorumAction(newQuorum))
}

// ProposeDeployContract proposes delegated code deployment.
func (e *Engine) ProposeDeployContract(caller multisig.Address, amount uint64, code, metadata []byte, args [][]byte) (uint64, error) {
	return e.proposeAtomic(caller, deployContractAction(amount, code, metadata, args))
}

// ProposeSetBatchStatus proposes reporting final statuses for a safe
// batch. The safe service must be bound and the same batch and status
// list must not be pending already.
func (e *Engine) ProposeSetBatchStatus(caller multisig.Address, batchID uint64, statuses []TransactionStatus) (uint64, error) {
	if !e.gw.SafeConfigured() {
		return 0, errors.ErrState.New("safe service not configured")
	}
	return e.proposeDedup(caller, e.statusDedup, setBatchStatusAction(batchID, statuses))
}

// ProposeBatchTransfer proposes executing a batch of transfers. The
// multi-transfer service must be bound and the same batch and transfer
// list must not be pending already.
func (e *Engine) ProposeBatchTransfer(caller multisig.Address, batchID uint64, transfers []*Transfer) (uint64, error) {
	if !e.gw.MultiTransferConfigured() {
		return 0, errors.ErrState.New("multi-transfer service not configured")
	}
	return e.proposeDedup(caller, e.transferDedup, batchTransferAction(batchID, transfers))
}

func (e *Engine) proposeDedup(caller multisig.Address, dedup DedupIndex, action *Action) (uint64, error) {
	var id uint64
	err := e.atomic(func(db multisig.KVStore) error {
		fingerprint, err := Fingerprint(action)
		if err != nil {
			return err
		}
		if id, err = e.propose(db, caller, action); err != nil {
			return err
		}
		return dedup.Record(db, action.GetBatchId(), fingerprint, id)
	})
	return id, err
}

// Sign records the caller's signature on a pending action. Signing the
// same action twice is a no-op.
func (e *Engine) Sign(caller multisig.Address, actionID uint64) error {
	return e.atomic(func(db multisig.KVStore) error {
		if _, err := e.log.Load(db, actionID); err != nil {
			return err
		}
		if !e.roles.RoleOfAddress(db, e.reg, caller).CanSign() {
			return errors.ErrUnauthorized.New("only board members can sign")
		}
		if !e.stakes.HasEnoughStake(db, caller) {
			return errors.ErrUnauthorized.New("not enough stake")
		}
		return e.log.AddSigner(db, actionID, e.reg.ID(db, caller))
	})
}

// Unsign withdraws the caller's signature from a pending action. It is
// gated like Sign; withdrawing an absent signature is a no-op.
func (e *Engine) Unsign(caller multisig.Address, actionID uint64) error {
	return e.atomic(func(db multisig.KVStore) error {
		if _, err := e.log.Load(db, actionID); err != nil {
			return err
		}
		if !e.roles.RoleOfAddress(db, e.reg, caller).CanSign() {
			return errors.ErrUnauthorized.New("only board members can unsign")
		}
		if !e.stakes.HasEnoughStake(db, caller) {
			return errors.ErrUnauthorized.New("not enough stake")
		}
		return e.log.RemoveSigner(db, actionID, e.reg.ID(db, caller))
	})
}

// PerformAction executes a pending action once quorum is reached. On any
// failure, including a failing external call, every effect of the
// attempt is rolled back and the action stays pending with its
// signatures intact.
func (e *Engine) PerformAction(ctx multisig.Context, caller multisig.Address, actionID uint64) error {
	return e.atomic(func(db multisig.KVStore) error {
		return e.exec.Perform(ctx, db, caller, actionID)
	})
}

// DiscardAction drops a pending action that currently has no valid
// signatures.
func (e *Engine) DiscardAction(caller multisig.Address, actionID uint64) error {
	return e.atomic(func(db multisig.KVStore) error {
		if !e.roles.RoleOfAddress(db, e.reg, caller).CanDiscardAction() {
			return errors.ErrUnauthorized.New("only board members and proposers can discard")
		}
		if !e.log.Pending(db, actionID) {
			return errors.ErrState.Newf("action %d does not exist", actionID)
		}
		if n := e.quorum.ValidSignerCount(db, actionID); n > 0 {
			return errors.ErrState.Newf("cannot discard action with %d valid signatures", n)
		}
		e.log.Clear(db, actionID)
		return nil
	})
}

// Pause stops execution of everything but slashing actions. Owner only.
func (e *Engine) Pause(caller multisig.Address) error {
	return e.setPaused(caller, true)
}

// Unpause resumes normal execution. Owner only.
func (e *Engine) Unpause(caller multisig.Address) error {
	return e.setPaused(caller, false)
}

func (e *Engine) setPaused(caller multisig.Address, paused bool) error {
	return e.atomic(func(db multisig.KVStore) error {
		if !caller.Equals(e.owner) {
			return errors.ErrUnauthorized.New("only the owner can pause and unpause")
		}
		e.cfg.SetPaused(db, paused)
		return nil
	})
}
