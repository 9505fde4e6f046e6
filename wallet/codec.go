package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

var (
	_ orm.Model = (*Action)(nil)
	_ orm.Model = (*SignerSet)(nil)
	_ orm.Model = (*BatchReport)(nil)
)

// Target returns the user address a membership action operates on.
func (m *Action) Target() multisig.Address {
	return multisig.Address(m.GetAddress())
}

// Validate ensures the action is a well formed instance of its variant.
func (m *Action) Validate() error {
	switch m.GetType() {
	case ActionType_ACTION_NOTHING:
		return nil
	case ActionType_ACTION_ADD_BOARD_MEMBER,
		ActionType_ACTION_ADD_PROPOSER,
		ActionType_ACTION_REMOVE_USER,
		ActionType_ACTION_SLASH_USER:
		return m.Target().Validate()
	case ActionType_ACTION_CHANGE_QUORUM:
		return nil
	case ActionType_ACTION_DEPLOY_CONTRACT:
		if len(m.Code) == 0 {
			return errors.ErrEmpty.New("contract code")
		}
		return nil
	case ActionType_ACTION_SET_BATCH_STATUS:
		if m.BatchId == 0 {
			return errors.ErrEmpty.New("batch id")
		}
		if len(m.Statuses) == 0 {
			return errors.ErrEmpty.New("batch statuses")
		}
		return nil
	case ActionType_ACTION_BATCH_TRANSFER:
		if m.BatchId == 0 {
			return errors.ErrEmpty.New("batch id")
		}
		if len(m.Transfers) == 0 {
			return errors.ErrEmpty.New("batch transfers")
		}
		for i, t := range m.Transfers {
			if err := t.Validate(); err != nil {
				return errors.Wrapf(err, "transfer %d", i)
			}
		}
		return nil
	default:
		return errors.ErrType.Newf("action type %d", m.GetType())
	}
}

// Validate ensures the transfer has a destination, a token and a
// positive amount.
func (t *Transfer) Validate() error {
	if err := multisig.Address(t.GetTo()).Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(t.GetToken()) == 0 {
		return errors.ErrEmpty.New("token")
	}
	if t.GetAmount() == 0 {
		return errors.ErrAmount.New("zero transfer")
	}
	return nil
}

// Validate rejects duplicate signer ids and the reserved zero id.
func (m *SignerSet) Validate() error {
	seen := make(map[uint64]struct{}, len(m.Ids))
	for _, id := range m.Ids {
		if id == 0 {
			return errors.ErrInput.New("zero signer id")
		}
		if _, ok := seen[id]; ok {
			return errors.ErrDuplicate.Newf("signer id %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Contains returns true if the given user id already signed.
func (m *SignerSet) Contains(id uint64) bool {
	for _, have := range m.Ids {
		if have == id {
			return true
		}
	}
	return false
}

// Add appends the id unless already present. Reports whether the set
// changed.
func (m *SignerSet) Add(id uint64) bool {
	if m.Contains(id) {
		return false
	}
	m.Ids = append(m.Ids, id)
	return true
}

// Remove drops the id via swap-remove. Reports whether the set changed.
func (m *SignerSet) Remove(id uint64) bool {
	for i, have := range m.Ids {
		if have == id {
			last := len(m.Ids) - 1
			m.Ids[i] = m.Ids[last]
			m.Ids = m.Ids[:last]
			return true
		}
	}
	return false
}

// Validate ensures the report refers to a real batch and execution.
func (m *BatchReport) Validate() error {
	if m.BatchId == 0 {
		return errors.ErrEmpty.New("batch id")
	}
	if m.BlockHeight <= 0 {
		return errors.ErrInput.Newf("block height %d", m.BlockHeight)
	}
	return nil
}

// Action constructors. Every proposal endpoint builds its payload
// through one of these so the stored representation of a variant is
// canonical, which the deduplication fingerprint relies on.

func nothingAction() *Action {
	return &Action{Type: ActionType_ACTION_NOTHING}
}

func addBoardMemberAction(addr multisig.Address) *Action {
	return &Action{Type: ActionType_ACTION_ADD_BOARD_MEMBER, Address: addr}
}

func addProposerAction(addr multisig.Address) *Action {
	return &Action{Type: ActionType_ACTION_ADD_PROPOSER, Address: addr}
}

func removeUserAction(addr multisig.Address) *Action {
	return &Action{Type: ActionType_ACTION_REMOVE_USER, Address: addr}
}

func slashUserAction(addr multisig.Address) *Action {
	return &Action{Type: ActionType_ACTION_SLASH_USER, Address: addr}
}

func changeQuorumAction(newQuorum uint32) *Action {
	return &Action{Type: ActionType_ACTION_CHANGE_QUORUM, NewQuorum: newQuorum}
}

func deployContractAction(amount uint64, code, metadata []byte, args [][]byte) *Action {
	return &Action{
		Type:     ActionType_ACTION_DEPLOY_CONTRACT,
		Amount:   amount,
		Code:     code,
		Metadata: metadata,
		Args:     args,
	}
}

func setBatchStatusAction(batchID uint64, statuses []TransactionStatus) *Action {
	raw := make([]uint32, len(statuses))
	for i, s := range statuses {
		raw[i] = uint32(s)
	}
	return &Action{
		Type:     ActionType_ACTION_SET_BATCH_STATUS,
		BatchId:  batchID,
		Statuses: raw,
	}
}

func batchTransferAction(batchID uint64, transfers []*Transfer) *Action {
	return &Action{
		Type:      ActionType_ACTION_BATCH_TRANSFER,
		BatchId:   batchID,
		Transfers: transfers,
	}
}
