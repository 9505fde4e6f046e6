package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/store"
)

func TestActionLogAppend(t *testing.T) {
	db := store.MemStore()
	log := NewActionLog()

	id, err := log.Append(db, changeQuorumAction(3), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, []uint64{7}, log.SignerIDs(db, id), "proposer signature recorded")

	// A proposal without signer starts with an empty set.
	id2, err := log.Append(db, nothingAction(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id2)
	assert.Nil(t, log.SignerIDs(db, id2))

	assert.Equal(t, uint64(2), log.LastIndex(db))

	action, err := log.Load(db, id)
	require.NoError(t, err)
	assert.Equal(t, ActionType_ACTION_CHANGE_QUORUM, action.GetType())
	assert.Equal(t, uint32(3), action.GetNewQuorum())

	_, err = log.Load(db, 99)
	assert.True(t, errors.ErrState.Is(err))
}

func TestActionLogSigners(t *testing.T) {
	db := store.MemStore()
	log := NewActionLog()

	id, err := log.Append(db, nothingAction(), 0)
	require.NoError(t, err)

	require.NoError(t, log.AddSigner(db, id, 3))
	require.NoError(t, log.AddSigner(db, id, 5))
	require.NoError(t, log.AddSigner(db, id, 3), "signing twice is a no-op")
	assert.Equal(t, []uint64{3, 5}, log.SignerIDs(db, id))

	require.NoError(t, log.RemoveSigner(db, id, 3))
	assert.Equal(t, []uint64{5}, log.SignerIDs(db, id))
	require.NoError(t, log.RemoveSigner(db, id, 9), "removing an absent signature is a no-op")

	require.NoError(t, log.RemoveSigner(db, id, 5))
	assert.Nil(t, log.SignerIDs(db, id))
}

func TestActionLogClearBurnsID(t *testing.T) {
	db := store.MemStore()
	log := NewActionLog()

	id, err := log.Append(db, nothingAction(), 1)
	require.NoError(t, err)
	assert.True(t, log.Pending(db, id))

	log.Clear(db, id)
	assert.False(t, log.Pending(db, id))
	assert.Nil(t, log.SignerIDs(db, id))
	assert.False(t, log.WasExecuted(db, id))

	log.MarkExecuted(db, id)
	assert.True(t, log.WasExecuted(db, id))

	// The id is burned: the next append moves past it.
	next, err := log.Append(db, nothingAction(), 1)
	require.NoError(t, err)
	assert.Equal(t, id+1, next)
}
