package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

// ActionExecutor turns a fully signed action into its effect. Execution
// is non-reentrant and the action slot is cleared before the effect
// runs, so no effect can ever observe or re-trigger the action that
// caused it. Callers are expected to run Perform inside a cache wrap and
// discard on error, which makes the slot clearing and every effect
// all-or-nothing.
type ActionExecutor struct {
	reg    UserRegistry
	roles  RoleStore
	stakes StakeLedger
	log    ActionLog
	quorum QuorumEngine
	cfg    ConfigBucket
	gw     *Gateway

	statusDedup   DedupIndex
	transferDedup DedupIndex
	reports       orm.Bucket

	executing bool
}

// NewActionExecutor wires execution over the engine components.
func NewActionExecutor(
	reg UserRegistry,
	roles RoleStore,
	stakes StakeLedger,
	log ActionLog,
	quorum QuorumEngine,
	cfg ConfigBucket,
	gw *Gateway,
	statusDedup, transferDedup DedupIndex,
) *ActionExecutor {
	return &ActionExecutor{
		reg:           reg,
		roles:         roles,
		stakes:        stakes,
		log:           log,
		quorum:        quorum,
		cfg:           cfg,
		gw:            gw,
		statusDedup:   statusDedup,
		transferDedup: transferDedup,
		reports:       orm.NewBucket("report"),
	}
}

// Perform executes the action if the caller may trigger execution and
// quorum is reached right now.
func (e *ActionExecutor) Perform(ctx multisig.Context, db multisig.KVStore, caller multisig.Address, actionID uint64) error {
	if !e.roles.RoleOfAddress(db, e.reg, caller).CanPerformAction() {
		return errors.ErrUnauthorized.New("only board members and proposers can perform actions")
	}
	action, err := e.log.Load(db, actionID)
	if err != nil {
		return err
	}
	if !e.quorum.QuorumReached(db, actionID) {
		return errors.ErrState.Newf("quorum not reached for action %d", actionID)
	}
	if e.cfg.Paused(db) && action.GetType() != ActionType_ACTION_SLASH_USER {
		return errors.ErrState.New("paused: only slashing actions may execute")
	}
	if e.executing {
		return errors.ErrState.New("re-entrant action execution")
	}
	e.executing = true
	defer func() { e.executing = false }()

	// The slot is freed and the id burned before any effect runs.
	e.log.Clear(db, actionID)
	e.log.MarkExecuted(db, actionID)

	return e.execute(ctx, db, action)
}

func (e *ActionExecutor) execute(ctx multisig.Context, db multisig.KVStore, action *Action) error {
	switch action.GetType() {
	case ActionType_ACTION_NOTHING:
		return nil
	case ActionType_ACTION_ADD_BOARD_MEMBER:
		return e.roles.ChangeUserRole(db, e.reg, action.Target(), RoleBoardMember)
	case ActionType_ACTION_ADD_PROPOSER:
		if err := e.roles.ChangeUserRole(db, e.reg, action.Target(), RoleProposer); err != nil {
			return err
		}
		return e.checkQuorumFitsBoard(db)
	case ActionType_ACTION_REMOVE_USER:
		if err := e.roles.ChangeUserRole(db, e.reg, action.Target(), RoleNone); err != nil {
			return err
		}
		return e.checkNotLeaderless(db)
	case ActionType_ACTION_SLASH_USER:
		if err := e.roles.ChangeUserRole(db, e.reg, action.Target(), RoleNone); err != nil {
			return err
		}
		if err := e.checkNotLeaderless(db); err != nil {
			return err
		}
		return e.stakes.Slash(db, action.Target())
	case ActionType_ACTION_CHANGE_QUORUM:
		if int64(action.GetNewQuorum()) > e.roles.NumBoardMembers(db) {
			return errors.ErrInvariant.Newf("quorum %d exceeds board size %d", action.GetNewQuorum(), e.roles.NumBoardMembers(db))
		}
		e.cfg.SetQuorum(db, action.GetNewQuorum())
		return nil
	case ActionType_ACTION_DEPLOY_CONTRACT:
		addr, err := e.gw.Deploy(ctx, action.GetAmount(), action.GetCode(), action.GetMetadata(), action.GetArgs())
		if err != nil {
			return err
		}
		return e.gw.RegisterContract(addr)
	case ActionType_ACTION_SET_BATCH_STATUS:
		e.statusDedup.InvalidateBatch(db, e.log, action.GetBatchId())
		statuses := make([]TransactionStatus, len(action.GetStatuses()))
		for i, s := range action.GetStatuses() {
			statuses[i] = TransactionStatus(s)
		}
		return e.gw.SetBatchStatus(ctx, action.GetBatchId(), statuses)
	case ActionType_ACTION_BATCH_TRANSFER:
		e.transferDedup.InvalidateBatch(db, e.log, action.GetBatchId())
		statuses, err := e.gw.BatchTransfer(ctx, action.GetTransfers())
		if err != nil {
			return err
		}
		return e.storeReport(ctx, db, action.GetBatchId(), statuses)
	default:
		return errors.ErrType.Newf("action type %d", action.GetType())
	}
}

// checkNotLeaderless rejects effects that would leave nobody able to
// propose, and re-validates that the quorum still fits the board.
func (e *ActionExecutor) checkNotLeaderless(db multisig.ReadOnlyKVStore) error {
	if e.roles.NumBoardMembers(db)+e.roles.NumProposers(db) == 0 {
		return errors.ErrInvariant.New("cannot remove the last user")
	}
	return e.checkQuorumFitsBoard(db)
}

func (e *ActionExecutor) checkQuorumFitsBoard(db multisig.ReadOnlyKVStore) error {
	quorum := int64(e.cfg.Quorum(db))
	board := e.roles.NumBoardMembers(db)
	if quorum > board {
		return errors.ErrInvariant.Newf("quorum %d exceeds board size %d", quorum, board)
	}
	return nil
}

func (e *ActionExecutor) storeReport(ctx multisig.Context, db multisig.KVStore, batchID uint64, statuses []TransactionStatus) error {
	height, err := multisig.MustHeight(ctx)
	if err != nil {
		return err
	}
	raw := make([]uint32, len(statuses))
	for i, s := range statuses {
		raw[i] = uint32(s)
	}
	report := &BatchReport{
		BatchId:     batchID,
		BlockHeight: height,
		Statuses:    raw,
	}
	return e.reports.Put(db, orm.EncodeSequence(int64(batchID)), report)
}

// Report returns the outcome of the last executed transfer batch with
// the given id, nil if none was executed yet.
func (e *ActionExecutor) Report(db multisig.ReadOnlyKVStore, batchID uint64) (*BatchReport, error) {
	var report BatchReport
	err := e.reports.One(db, orm.EncodeSequence(int64(batchID)), &report)
	if errors.ErrNotFound.Is(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
