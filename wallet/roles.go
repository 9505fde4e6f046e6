package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
	"github.com/iov-one/multisig/orm"
)

// Role is the permission level of a registered user.
type Role uint8

const (
	// RoleNone marks a registered user with no remaining permissions.
	RoleNone Role = 0
	// RoleProposer may propose, perform and discard actions.
	RoleProposer Role = 1
	// RoleBoardMember has all proposer permissions and may also sign.
	RoleBoardMember Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleProposer:
		return "proposer"
	case RoleBoardMember:
		return "board member"
	default:
		return "invalid"
	}
}

// CanPropose returns true for roles allowed to create new actions.
func (r Role) CanPropose() bool {
	return r == RoleProposer || r == RoleBoardMember
}

// CanSign returns true for roles whose signatures count towards quorum.
func (r Role) CanSign() bool {
	return r == RoleBoardMember
}

// CanPerformAction returns true for roles allowed to trigger execution.
func (r Role) CanPerformAction() bool {
	return r.CanPropose()
}

// CanDiscardAction returns true for roles allowed to drop abandoned
// actions.
func (r Role) CanDiscardAction() bool {
	return r.CanPropose()
}

func validRole(r Role) bool {
	return r == RoleNone || r == RoleProposer || r == RoleBoardMember
}

// Keys of the denormalized role counters.
var (
	keyNumBoardMembers = []byte("board_members")
	keyNumProposers    = []byte("proposers")
)

// RoleStore persists per-user roles together with denormalized counts of
// board members and proposers. All role transitions must go through
// ChangeUserRole so the counts can never drift from the per-user
// records.
type RoleStore struct {
	roles  orm.RawBucket
	counts orm.Bucket
}

// NewRoleStore sets up role persistence.
func NewRoleStore() RoleStore {
	return RoleStore{
		roles:  orm.NewRawBucket("role"),
		counts: orm.NewBucket("role_cnt"),
	}
}

// RoleOf returns the role of the user id. Unknown ids have RoleNone.
func (s RoleStore) RoleOf(db multisig.ReadOnlyKVStore, id uint64) Role {
	if id == 0 {
		return RoleNone
	}
	raw := s.roles.Get(db, orm.EncodeSequence(int64(id)))
	if len(raw) != 1 {
		return RoleNone
	}
	return Role(raw[0])
}

// RoleOfAddress resolves the address through the registry first.
func (s RoleStore) RoleOfAddress(db multisig.ReadOnlyKVStore, reg UserRegistry, addr multisig.Address) Role {
	return s.RoleOf(db, reg.ID(db, addr))
}

// ChangeUserRole moves the user behind the address to a new role,
// registering the address on first sight and keeping the board member
// and proposer counters in sync. This is the only place roles are ever
// written.
func (s RoleStore) ChangeUserRole(db multisig.KVStore, reg UserRegistry, addr multisig.Address, newRole Role) error {
	if !validRole(newRole) {
		return errors.ErrInput.Newf("role %d", newRole)
	}
	if err := addr.Validate(); err != nil {
		return err
	}
	id, _ := reg.GetOrCreate(db, addr)
	oldRole := s.RoleOf(db, id)
	if oldRole == newRole {
		return nil
	}
	s.roles.Set(db, orm.EncodeSequence(int64(id)), []byte{byte(newRole)})
	if err := s.adjustCount(db, oldRole, -1); err != nil {
		return err
	}
	return s.adjustCount(db, newRole, +1)
}

func (s RoleStore) adjustCount(db multisig.KVStore, role Role, delta int64) error {
	var key []byte
	switch role {
	case RoleBoardMember:
		key = keyNumBoardMembers
	case RoleProposer:
		key = keyNumProposers
	default:
		return nil
	}
	var cnt orm.Counter
	if err := s.counts.One(db, key, &cnt); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	cnt.Count += delta
	if cnt.Count < 0 {
		return errors.ErrInvariant.Newf("%s count below zero", role)
	}
	return s.counts.Put(db, key, &cnt)
}

// NumBoardMembers returns the current board size.
func (s RoleStore) NumBoardMembers(db multisig.ReadOnlyKVStore) int64 {
	return s.count(db, keyNumBoardMembers)
}

// NumProposers returns how many users hold the proposer role.
func (s RoleStore) NumProposers(db multisig.ReadOnlyKVStore) int64 {
	return s.count(db, keyNumProposers)
}

func (s RoleStore) count(db multisig.ReadOnlyKVStore, key []byte) int64 {
	var cnt orm.Counter
	if err := s.counts.One(db, key, &cnt); err != nil {
		return 0
	}
	return cnt.Count
}

// UsersWithRole returns the addresses of all users currently holding the
// role, in user id order.
func (s RoleStore) UsersWithRole(db multisig.ReadOnlyKVStore, reg UserRegistry, role Role) []multisig.Address {
	var out []multisig.Address
	total := reg.Count(db)
	for id := uint64(1); id <= total; id++ {
		if s.RoleOf(db, id) == role {
			out = append(out, reg.Address(db, id))
		}
	}
	return out
}
