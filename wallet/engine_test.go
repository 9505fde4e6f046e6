package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/store"
)

func testAddr(seed string) multisig.Address {
	return multisig.NewAddress([]byte(seed))
}

type testEnv struct {
	t      *testing.T
	engine *Engine
	ctx    multisig.Context

	owner multisig.Address
	alice multisig.Address
	bob   multisig.Address
	carol multisig.Address
	dave  multisig.Address
}

// newTestEnv builds an initialized engine with a board of three fully
// staked members (alice, bob, carol), quorum two, required stake 100 and
// slash amount 40. dave is an outsider.
func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		t:     t,
		owner: testAddr("owner"),
		alice: testAddr("alice"),
		bob:   testAddr("bob"),
		carol: testAddr("carol"),
		dave:  testAddr("dave"),
		ctx:   multisig.WithHeight(context.Background(), 100),
	}
	env.engine = NewEngine(store.MemStore(), env.owner)
	board := []multisig.Address{env.alice, env.bob, env.carol}
	require.NoError(t, env.engine.Init(100, 40, 2, board))
	for _, member := range board {
		require.NoError(t, env.engine.Stake(member, 100))
	}
	return env
}

func (env *testEnv) sign(id uint64, signers ...multisig.Address) {
	env.t.Helper()
	for _, signer := range signers {
		require.NoError(env.t, env.engine.Sign(signer, id))
	}
}

func (env *testEnv) perform(caller multisig.Address, id uint64) error {
	return env.engine.PerformAction(env.ctx, caller, id)
}

// bindTransfer registers a contract address and binds the fake as the
// multi-transfer service.
func (env *testEnv) bindTransfer(svc MultiTransferService) multisig.Address {
	env.t.Helper()
	addr := testAddr("multi-transfer contract")
	require.NoError(env.t, env.engine.Gateway().RegisterContract(addr))
	require.NoError(env.t, env.engine.Gateway().BindMultiTransfer(addr, svc))
	return addr
}

// bindSafe registers a contract address and binds the fake as the safe
// service.
func (env *testEnv) bindSafe(svc SafeService) multisig.Address {
	env.t.Helper()
	addr := testAddr("safe contract")
	require.NoError(env.t, env.engine.Gateway().RegisterContract(addr))
	require.NoError(env.t, env.engine.Gateway().BindSafe(addr, svc))
	return addr
}

type deployerFake struct {
	addr  multisig.Address
	err   error
	calls int
}

func (d *deployerFake) Deploy(ctx multisig.Context, amount uint64, code, metadata []byte, args [][]byte) (multisig.Address, error) {
	d.calls++
	return d.addr, d.err
}

type safeFake struct {
	batch       *TransferBatch
	err         error
	gotBatchID  uint64
	gotStatuses []TransactionStatus
}

func (s *safeFake) GetCurrentBatch(ctx multisig.Context) (*TransferBatch, error) {
	return s.batch, s.err
}

func (s *safeFake) SetTransactionBatchStatus(ctx multisig.Context, batchID uint64, statuses []TransactionStatus) error {
	if s.err != nil {
		return s.err
	}
	s.gotBatchID = batchID
	s.gotStatuses = statuses
	return nil
}

type transferFake struct {
	err   error
	short bool
	got   []*Transfer
	calls int

	// inner, when set, is invoked during the call to exercise
	// re-entrant behavior. Its error fails the call.
	inner    func() error
	innerErr error
}

func (f *transferFake) BatchTransfer(ctx multisig.Context, transfers []*Transfer) ([]TransactionStatus, error) {
	f.calls++
	if f.inner != nil {
		f.innerErr = f.inner()
		if f.innerErr != nil {
			return nil, f.innerErr
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	f.got = transfers
	n := len(transfers)
	if f.short {
		n--
	}
	out := make([]TransactionStatus, n)
	for i := range out {
		out[i] = StatusExecuted
	}
	return out, nil
}

func someTransfers() []*Transfer {
	return []*Transfer{
		{To: testAddr("merchant"), Token: []byte("TOK"), Amount: 25},
		{To: testAddr("charity"), Token: []byte("TOK"), Amount: 75},
	}
}

func TestInitValidation(t *testing.T) {
	owner := testAddr("owner")
	alice := testAddr("alice")

	engine := NewEngine(store.MemStore(), owner)
	assert.True(t, errors.ErrInput.Is(engine.Init(100, 40, 1, nil)), "empty board")
	assert.True(t, errors.ErrInvariant.Is(engine.Init(100, 40, 2, []multisig.Address{alice})), "quorum above board size")
	assert.True(t, errors.ErrInput.Is(engine.Init(100, 200, 1, []multisig.Address{alice})), "slash amount above required stake")
	assert.True(t, errors.ErrDuplicate.Is(engine.Init(100, 40, 1, []multisig.Address{alice, alice})), "duplicate board member")

	require.NoError(t, engine.Init(100, 40, 1, []multisig.Address{alice}))
	assert.True(t, errors.ErrState.Is(engine.Init(100, 40, 1, []multisig.Address{alice})), "double init")

	assert.Equal(t, uint32(1), engine.Quorum())
	assert.Equal(t, uint64(100), engine.RequiredStake())
	assert.Equal(t, uint64(40), engine.SlashAmount())
	assert.Equal(t, int64(1), engine.NumBoardMembers())
	assert.Equal(t, RoleBoardMember, engine.UserRole(alice))
}

func TestProposeAutoSign(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.True(t, env.engine.Signed(env.alice, id), "board member proposals are auto-signed")
	assert.Equal(t, uint32(1), env.engine.ActionSignerCount(id))
	assert.Equal(t, uint32(1), env.engine.ActionValidSignerCount(id))
	assert.False(t, env.engine.QuorumReached(id))

	_, err = env.engine.ProposeNothing(env.dave)
	assert.True(t, errors.ErrUnauthorized.Is(err), "outsiders cannot propose")
}

func TestStakeGate(t *testing.T) {
	env := newTestEnv(t)

	assert.True(t, errors.ErrUnauthorized.Is(env.engine.Stake(env.dave, 50)), "only board members can stake")

	// Board members may not unstake below the requirement.
	assert.True(t, errors.ErrState.Is(env.engine.Unstake(env.alice, 1)))
	require.NoError(t, env.engine.Stake(env.alice, 50))
	require.NoError(t, env.engine.Unstake(env.alice, 50))
	assert.Equal(t, uint64(100), env.engine.Staked(env.alice))
}

func TestSignAndUnsign(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)

	assert.True(t, errors.ErrUnauthorized.Is(env.engine.Sign(env.dave, id)), "outsiders cannot sign")
	assert.True(t, errors.ErrState.Is(env.engine.Sign(env.bob, 99)), "cannot sign a missing action")

	env.sign(id, env.bob, env.bob) // idempotent
	assert.Equal(t, uint32(2), env.engine.ActionSignerCount(id))
	assert.True(t, env.engine.QuorumReached(id))

	require.NoError(t, env.engine.Unsign(env.bob, id))
	assert.Equal(t, uint32(1), env.engine.ActionSignerCount(id))
	assert.False(t, env.engine.Signed(env.bob, id))
	require.NoError(t, env.engine.Unsign(env.bob, id), "withdrawing an absent signature is a no-op")
}

func TestPerformChangeQuorum(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)

	err = env.perform(env.alice, id)
	assert.True(t, errors.ErrState.Is(err), "cannot perform before quorum")

	env.sign(id, env.bob)
	assert.True(t, errors.ErrUnauthorized.Is(env.perform(env.dave, id)))
	require.NoError(t, env.perform(env.alice, id))

	assert.Equal(t, uint32(3), env.engine.Quorum())
	assert.True(t, env.engine.WasActionExecuted(id))
	_, err = env.engine.ActionData(id)
	assert.True(t, errors.ErrState.Is(err), "the slot is cleared")
	assert.True(t, errors.ErrState.Is(env.perform(env.alice, id)), "execution cannot repeat")
}

// Raising the quorum above the board size must fail and leave no trace:
// the action stays pending with all signatures intact.
func TestPerformRollsBackOnInvariantViolation(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.engine.ProposeChangeQuorum(env.alice, 4)
	require.NoError(t, err)
	env.sign(id, env.bob)

	err = env.perform(env.alice, id)
	assert.True(t, errors.ErrInvariant.Is(err))

	assert.Equal(t, uint32(2), env.engine.Quorum(), "quorum unchanged")
	action, err := env.engine.ActionData(id)
	require.NoError(t, err, "action still pending")
	assert.Equal(t, uint32(4), action.GetNewQuorum())
	assert.Equal(t, uint32(2), env.engine.ActionSignerCount(id), "signatures intact")
	assert.False(t, env.engine.WasActionExecuted(id))
}

func TestMembershipActions(t *testing.T) {
	env := newTestEnv(t)
	eve := testAddr("eve")

	// Add eve to the board.
	id, err := env.engine.ProposeAddBoardMember(env.alice, eve)
	require.NoError(t, err)
	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))
	assert.Equal(t, RoleBoardMember, env.engine.UserRole(eve))
	assert.Equal(t, int64(4), env.engine.NumBoardMembers())

	// Demote eve to proposer through the same mechanism.
	id, err = env.engine.ProposeAddProposer(env.alice, eve)
	require.NoError(t, err)
	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))
	assert.Equal(t, RoleProposer, env.engine.UserRole(eve))
	assert.Equal(t, int64(3), env.engine.NumBoardMembers())
	assert.Equal(t, int64(1), env.engine.NumProposers())
	assert.Equal(t, []multisig.Address{eve}, env.engine.Proposers())

	// And remove eve completely.
	id, err = env.engine.ProposeRemoveUser(env.alice, eve)
	require.NoError(t, err)
	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))
	assert.Equal(t, RoleNone, env.engine.UserRole(eve))
	assert.Equal(t, int64(0), env.engine.NumProposers())
}

// Removing a board member from the board cannot push the board size
// below the quorum.
func TestRemoveCannotBreakQuorum(t *testing.T) {
	env := newTestEnv(t)

	// Quorum 2 with board of 3: removing one member is fine, removing a
	// second would leave quorum 2 over board 2... still fine. Raise the
	// quorum to 3 first so any removal breaks it.
	id, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)
	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))

	id, err = env.engine.ProposeRemoveUser(env.alice, env.carol)
	require.NoError(t, err)
	env.sign(id, env.bob, env.carol)
	err = env.perform(env.alice, id)
	assert.True(t, errors.ErrInvariant.Is(err))
	assert.Equal(t, RoleBoardMember, env.engine.UserRole(env.carol), "rollback restored the role")
	assert.Equal(t, int64(3), env.engine.NumBoardMembers())
}

func TestRemoveLastUserRejected(t *testing.T) {
	owner := testAddr("owner")
	alice := testAddr("alice")
	engine := NewEngine(store.MemStore(), owner)
	require.NoError(t, engine.Init(100, 40, 1, []multisig.Address{alice}))
	require.NoError(t, engine.Stake(alice, 100))

	id, err := engine.ProposeRemoveUser(alice, alice)
	require.NoError(t, err)
	ctx := multisig.WithHeight(context.Background(), 1)
	err = engine.PerformAction(ctx, alice, id)
	assert.True(t, errors.ErrInvariant.Is(err))
	assert.Equal(t, RoleBoardMember, engine.UserRole(alice))
}

// A stored signature is judged at evaluation time: losing the board
// member role invalidates it, regaining the role revives it.
func TestSignatureRevalidation(t *testing.T) {
	env := newTestEnv(t)

	target, err := env.engine.ProposeNothing(env.alice)
	require.NoError(t, err)
	env.sign(target, env.bob)
	assert.True(t, env.engine.QuorumReached(target))

	// Remove bob from the board.
	id, err := env.engine.ProposeRemoveUser(env.alice, env.bob)
	require.NoError(t, err)
	env.sign(id, env.carol)
	require.NoError(t, env.perform(env.alice, id))

	assert.Equal(t, uint32(2), env.engine.ActionSignerCount(target), "raw signatures are untouched")
	assert.Equal(t, uint32(1), env.engine.ActionValidSignerCount(target), "bob's signature is stale")
	assert.Equal(t, []multisig.Address{env.alice}, env.engine.ActionValidSigners(target))
	assert.False(t, env.engine.QuorumReached(target))

	// Removed users may drain their stake.
	require.NoError(t, env.engine.Unstake(env.bob, 100))

	// Re-adding bob revives the signature only once the stake is back.
	id, err = env.engine.ProposeAddBoardMember(env.alice, env.bob)
	require.NoError(t, err)
	env.sign(id, env.carol)
	require.NoError(t, env.perform(env.alice, id))
	assert.Equal(t, uint32(1), env.engine.ActionValidSignerCount(target), "no stake, no valid signature")

	require.NoError(t, env.engine.Stake(env.bob, 100))
	assert.Equal(t, uint32(2), env.engine.ActionValidSignerCount(target))
	assert.True(t, env.engine.QuorumReached(target))
}

func TestSlashUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.engine.ProposeSlashUser(env.alice, env.dave)
	assert.True(t, errors.ErrInput.Is(err), "can only slash board members")

	id, err := env.engine.ProposeSlashUser(env.alice, env.bob)
	require.NoError(t, err)
	env.sign(id, env.carol)
	require.NoError(t, env.perform(env.alice, id))

	assert.Equal(t, RoleNone, env.engine.UserRole(env.bob))
	assert.Equal(t, uint64(60), env.engine.Staked(env.bob))
	assert.Equal(t, uint64(40), env.engine.SlashedPool())
	require.NoError(t, env.engine.Unstake(env.bob, 60), "remaining stake can be drained")
}

func TestDiscardAction(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)

	assert.True(t, errors.ErrUnauthorized.Is(env.engine.DiscardAction(env.dave, id)))
	assert.True(t, errors.ErrState.Is(env.engine.DiscardAction(env.bob, id)), "valid signatures block discarding")

	require.NoError(t, env.engine.Unsign(env.alice, id))
	require.NoError(t, env.engine.DiscardAction(env.bob, id))
	assert.False(t, env.engine.WasActionExecuted(id))
	_, err = env.engine.ActionData(id)
	assert.True(t, errors.ErrState.Is(err))

	assert.True(t, errors.ErrState.Is(env.engine.DiscardAction(env.bob, id)), "cannot discard twice")
}

func TestPauseAllowsOnlySlashing(t *testing.T) {
	env := newTestEnv(t)

	assert.True(t, errors.ErrUnauthorized.Is(env.engine.Pause(env.alice)), "only the owner can pause")
	require.NoError(t, env.engine.Pause(env.owner))
	assert.True(t, env.engine.IsPaused())

	quorumID, err := env.engine.ProposeChangeQuorum(env.alice, 1)
	require.NoError(t, err)
	env.sign(quorumID, env.bob)
	assert.True(t, errors.ErrState.Is(env.perform(env.alice, quorumID)), "paused engine rejects regular actions")

	slashID, err := env.engine.ProposeSlashUser(env.alice, env.carol)
	require.NoError(t, err)
	env.sign(slashID, env.bob)
	require.NoError(t, env.perform(env.alice, slashID), "slashing is exempt from pause")

	require.NoError(t, env.engine.Unpause(env.owner))
	assert.False(t, env.engine.IsPaused())
	require.NoError(t, env.perform(env.alice, quorumID))
	assert.Equal(t, uint32(1), env.engine.Quorum())
}

func TestDeployContract(t *testing.T) {
	env := newTestEnv(t)
	deployed := testAddr("deployed contract")
	fake := &deployerFake{addr: deployed}
	env.engine.Gateway().BindDeployer(fake)

	id, err := env.engine.ProposeDeployContract(env.alice, 1000, []byte{0xc0, 0xde}, nil, [][]byte{{1}})
	require.NoError(t, err)
	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))

	assert.Equal(t, 1, fake.calls)
	assert.True(t, env.engine.Gateway().IsContract(deployed), "the new contract is registered")
}

func TestSetBatchStatus(t *testing.T) {
	env := newTestEnv(t)

	statuses := []TransactionStatus{StatusExecuted, StatusRejected}
	_, err := env.engine.ProposeSetBatchStatus(env.alice, 5, statuses)
	assert.True(t, errors.ErrState.Is(err), "requires a bound safe service")

	safe := &safeFake{}
	env.bindSafe(safe)

	id, err := env.engine.ProposeSetBatchStatus(env.alice, 5, statuses)
	require.NoError(t, err)
	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))

	assert.Equal(t, uint64(5), safe.gotBatchID)
	assert.Equal(t, statuses, safe.gotStatuses)
}

func TestBatchTransferDedup(t *testing.T) {
	env := newTestEnv(t)
	fake := &transferFake{}
	env.bindTransfer(fake)

	transfers := someTransfers()
	id, err := env.engine.ProposeBatchTransfer(env.alice, 7, transfers)
	require.NoError(t, err)

	_, err = env.engine.ProposeBatchTransfer(env.bob, 7, transfers)
	assert.True(t, errors.ErrDuplicate.Is(err), "identical batch content cannot be proposed twice")

	found, ok := env.engine.ProposedBatchTransferID(7, transfers)
	assert.True(t, ok)
	assert.Equal(t, id, found)

	// Different content for the same batch is a competing proposal.
	other := []*Transfer{{To: testAddr("rogue"), Token: []byte("TOK"), Amount: 1}}
	sibling, err := env.engine.ProposeBatchTransfer(env.bob, 7, other)
	require.NoError(t, err)

	env.sign(id, env.bob)
	require.NoError(t, env.perform(env.alice, id))
	assert.Equal(t, transfers, fake.got)

	_, err = env.engine.ActionData(sibling)
	assert.True(t, errors.ErrState.Is(err), "executing one proposal drops its competitors")
	_, ok = env.engine.ProposedBatchTransferID(7, transfers)
	assert.False(t, ok, "the executed entry is gone as well")

	// After execution the batch id is free again.
	_, err = env.engine.ProposeBatchTransfer(env.alice, 7, transfers)
	require.NoError(t, err)
}

// A failing external call rolls the whole attempt back: the action stays
// pending, signatures and dedup entries survive, and a later retry can
// succeed.
func TestBatchTransferRollbackAndRetry(t *testing.T) {
	env := newTestEnv(t)
	fake := &transferFake{err: errors.ErrHuman.New("service down")}
	addr := env.bindTransfer(fake)

	transfers := someTransfers()
	id, err := env.engine.ProposeBatchTransfer(env.alice, 7, transfers)
	require.NoError(t, err)
	env.sign(id, env.bob)

	err = env.perform(env.alice, id)
	assert.True(t, errors.ErrExternalCall.Is(err))

	_, loadErr := env.engine.ActionData(id)
	require.NoError(t, loadErr, "action still pending after rollback")
	assert.Equal(t, uint32(2), env.engine.ActionSignerCount(id))
	assert.False(t, env.engine.WasActionExecuted(id))
	_, ok := env.engine.ProposedBatchTransferID(7, transfers)
	assert.True(t, ok, "dedup entry survived the rollback")

	// Bind a healthy service and retry the same action.
	require.NoError(t, env.engine.Gateway().BindMultiTransfer(addr, &transferFake{}))
	require.NoError(t, env.perform(env.alice, id))
	assert.True(t, env.engine.WasActionExecuted(id))

	report, final, err := env.engine.BatchReportFor(env.ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, uint64(7), report.BatchId)
	assert.Equal(t, int64(100), report.BlockHeight)
	assert.Equal(t, []uint32{uint32(StatusExecuted), uint32(StatusExecuted)}, report.Statuses)
	assert.False(t, final, "executed in the current block")

	later := multisig.WithHeight(context.Background(), 110)
	_, final, err = env.engine.BatchReportFor(later, 7)
	require.NoError(t, err)
	assert.True(t, final)
}

func TestBatchTransferShapeMismatch(t *testing.T) {
	env := newTestEnv(t)
	env.bindTransfer(&transferFake{short: true})

	id, err := env.engine.ProposeBatchTransfer(env.alice, 7, someTransfers())
	require.NoError(t, err)
	env.sign(id, env.bob)

	err = env.perform(env.alice, id)
	assert.True(t, errors.ErrExternalCall.Is(err), "a malformed response fails the execution")
	_, loadErr := env.engine.ActionData(id)
	require.NoError(t, loadErr)
}

// An external service cannot re-enter the engine during execution.
func TestPerformIsNotReentrant(t *testing.T) {
	env := newTestEnv(t)

	victim, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)
	env.sign(victim, env.bob)

	fake := &transferFake{}
	fake.inner = func() error {
		return env.perform(env.carol, victim)
	}
	env.bindTransfer(fake)

	id, err := env.engine.ProposeBatchTransfer(env.alice, 7, someTransfers())
	require.NoError(t, err)
	env.sign(id, env.bob)

	err = env.perform(env.alice, id)
	assert.True(t, errors.ErrExternalCall.Is(err))
	assert.True(t, errors.ErrState.Is(fake.innerErr), "nested execution is rejected")
	assert.Equal(t, uint32(2), env.engine.Quorum(), "the nested action did not run")
}

func TestPendingActionsView(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.engine.ProposeChangeQuorum(env.alice, 3)
	require.NoError(t, err)
	second, err := env.engine.ProposeNothing(env.bob)
	require.NoError(t, err)

	// Execute the first so only the second remains.
	env.sign(first, env.bob)
	require.NoError(t, env.perform(env.alice, first))

	pending, err := env.engine.PendingActions()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second, pending[0].ID)
	assert.Equal(t, ActionType_ACTION_NOTHING, pending[0].Action.GetType())
	assert.Equal(t, []multisig.Address{env.bob}, pending[0].Signers)

	assert.Equal(t, uint64(2), env.engine.ActionLastIndex())
}

func TestCurrentSafeBatch(t *testing.T) {
	env := newTestEnv(t)
	want := &TransferBatch{BatchID: 3, Transfers: someTransfers()}
	env.bindSafe(&safeFake{batch: want})

	got, err := env.engine.CurrentSafeBatch(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
