package wallet

import (
	multisig "github.com/iov-one/multisig"
)

// batchFinalityDepth is how many blocks an executed transfer batch must
// be behind the current height before its report is considered final.
const batchFinalityDepth = 10

// PendingAction is the full state of an action awaiting execution.
type PendingAction struct {
	ID      uint64
	Action  *Action
	Signers []multisig.Address
}

// Quorum returns how many valid signatures an action needs to execute.
func (e *Engine) Quorum() uint32 {
	return e.cfg.Quorum(e.db)
}

// RequiredStake returns the stake a board member must hold for their
// signature to count.
func (e *Engine) RequiredStake() uint64 {
	return e.cfg.RequiredStake(e.db)
}

// SlashAmount returns how much stake a slashed user loses.
func (e *Engine) SlashAmount() uint64 {
	return e.cfg.SlashAmount(e.db)
}

// IsPaused returns true while only slashing actions may execute.
func (e *Engine) IsPaused() bool {
	return e.cfg.Paused(e.db)
}

// NumBoardMembers returns the current board size.
func (e *Engine) NumBoardMembers() int64 {
	return e.roles.NumBoardMembers(e.db)
}

// NumProposers returns how many users hold the proposer role.
func (e *Engine) NumProposers() int64 {
	return e.roles.NumProposers(e.db)
}

// BoardMembers lists all current board member addresses.
func (e *Engine) BoardMembers() []multisig.Address {
	return e.roles.UsersWithRole(e.db, e.reg, RoleBoardMember)
}

// Proposers lists all current proposer addresses.
func (e *Engine) Proposers() []multisig.Address {
	return e.roles.UsersWithRole(e.db, e.reg, RoleProposer)
}

// UserRole returns the current role of the address.
func (e *Engine) UserRole(addr multisig.Address) Role {
	return e.roles.RoleOfAddress(e.db, e.reg, addr)
}

// Staked returns the stake balance of the address.
func (e *Engine) Staked(addr multisig.Address) uint64 {
	return e.stakes.Staked(e.db, addr)
}

// SlashedPool returns the total amount collected through slashing.
func (e *Engine) SlashedPool() uint64 {
	return e.stakes.SlashedPool(e.db)
}

// ActionData returns the pending action stored under the id.
func (e *Engine) ActionData(actionID uint64) (*Action, error) {
	return e.log.Load(e.db, actionID)
}

// ActionSigners lists the addresses of all recorded signers, whether
// their signatures are currently valid or not.
func (e *Engine) ActionSigners(actionID uint64) []multisig.Address {
	ids := e.log.SignerIDs(e.db, actionID)
	out := make([]multisig.Address, 0, len(ids))
	for _, id := range ids {
		if addr := e.reg.Address(e.db, id); addr != nil {
			out = append(out, addr)
		}
	}
	return out
}

// ActionValidSigners lists only the signers whose signatures currently
// count towards quorum.
func (e *Engine) ActionValidSigners(actionID uint64) []multisig.Address {
	var out []multisig.Address
	for _, id := range e.log.SignerIDs(e.db, actionID) {
		if e.quorum.eligible(e.db, id) {
			out = append(out, e.reg.Address(e.db, id))
		}
	}
	return out
}

// ActionSignerCount returns the raw number of recorded signatures.
func (e *Engine) ActionSignerCount(actionID uint64) uint32 {
	return uint32(len(e.log.SignerIDs(e.db, actionID)))
}

// ActionValidSignerCount returns how many recorded signatures count
// towards quorum right now.
func (e *Engine) ActionValidSignerCount(actionID uint64) uint32 {
	return e.quorum.ValidSignerCount(e.db, actionID)
}

// QuorumReached returns true once the action can be performed.
func (e *Engine) QuorumReached(actionID uint64) bool {
	return e.quorum.QuorumReached(e.db, actionID)
}

// Signed returns true if the address has a recorded signature on the
// action, regardless of current validity.
func (e *Engine) Signed(addr multisig.Address, actionID uint64) bool {
	id := e.reg.ID(e.db, addr)
	if id == 0 {
		return false
	}
	for _, signerID := range e.log.SignerIDs(e.db, actionID) {
		if signerID == id {
			return true
		}
	}
	return false
}

// WasActionExecuted returns true if the id was ever executed.
func (e *Engine) WasActionExecuted(actionID uint64) bool {
	return e.log.WasExecuted(e.db, actionID)
}

// ActionLastIndex returns the highest action id issued so far.
func (e *Engine) ActionLastIndex() uint64 {
	return e.log.LastIndex(e.db)
}

// PendingActions lists all actions still awaiting execution, in id
// order.
func (e *Engine) PendingActions() ([]PendingAction, error) {
	var out []PendingAction
	last := e.log.LastIndex(e.db)
	for id := uint64(1); id <= last; id++ {
		if !e.log.Pending(e.db, id) {
			continue
		}
		action, err := e.log.Load(e.db, id)
		if err != nil {
			return nil, err
		}
		out = append(out, PendingAction{
			ID:      id,
			Action:  action,
			Signers: e.ActionSigners(id),
		})
	}
	return out, nil
}

// ProposedSetBatchStatusID returns the pending action id of an identical
// status report proposal for the batch, if one exists.
func (e *Engine) ProposedSetBatchStatusID(batchID uint64, statuses []TransactionStatus) (uint64, bool) {
	fingerprint, err := Fingerprint(setBatchStatusAction(batchID, statuses))
	if err != nil {
		return 0, false
	}
	return e.statusDedup.Lookup(e.db, batchID, fingerprint)
}

// ProposedBatchTransferID returns the pending action id of an identical
// transfer proposal for the batch, if one exists.
func (e *Engine) ProposedBatchTransferID(batchID uint64, transfers []*Transfer) (uint64, bool) {
	fingerprint, err := Fingerprint(batchTransferAction(batchID, transfers))
	if err != nil {
		return 0, false
	}
	return e.transferDedup.Lookup(e.db, batchID, fingerprint)
}

// CurrentSafeBatch fetches the batch currently queued in the bound safe
// service.
func (e *Engine) CurrentSafeBatch(ctx multisig.Context) (*TransferBatch, error) {
	return e.gw.CurrentBatch(ctx)
}

// BatchReportFor returns the report of the last executed transfer batch
// with the given id and whether that execution is final, judged by the
// distance between the current block height and the execution height.
// The report is nil if the batch was never executed.
func (e *Engine) BatchReportFor(ctx multisig.Context, batchID uint64) (*BatchReport, bool, error) {
	report, err := e.exec.Report(e.db, batchID)
	if err != nil || report == nil {
		return nil, false, err
	}
	height, err := multisig.MustHeight(ctx)
	if err != nil {
		return nil, false, err
	}
	final := height-report.BlockHeight >= batchFinalityDepth
	return report, final, nil
}
