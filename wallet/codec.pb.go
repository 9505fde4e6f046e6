// Hand maintained wire codec for codec.proto, kept in the shape of
// protoc-gen-gogo output so a later switch to generated code is a
// drop-in replacement.

package wallet

import (
	fmt "fmt"
	io "io"
	math "math"

	proto "github.com/gogo/protobuf/proto"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// ActionType discriminates the persisted action union. A zero value is
// never stored; it marks a decoding problem.
type ActionType int32

const (
	ActionType_ACTION_INVALID          ActionType = 0
	ActionType_ACTION_NOTHING          ActionType = 1
	ActionType_ACTION_ADD_BOARD_MEMBER ActionType = 2
	ActionType_ACTION_ADD_PROPOSER     ActionType = 3
	ActionType_ACTION_REMOVE_USER      ActionType = 4
	ActionType_ACTION_SLASH_USER       ActionType = 5
	ActionType_ACTION_CHANGE_QUORUM    ActionType = 6
	ActionType_ACTION_DEPLOY_CONTRACT  ActionType = 7
	ActionType_ACTION_SET_BATCH_STATUS ActionType = 8
	ActionType_ACTION_BATCH_TRANSFER   ActionType = 9
)

var ActionType_name = map[int32]string{
	0: "ACTION_INVALID",
	1: "ACTION_NOTHING",
	2: "ACTION_ADD_BOARD_MEMBER",
	3: "ACTION_ADD_PROPOSER",
	4: "ACTION_REMOVE_USER",
	5: "ACTION_SLASH_USER",
	6: "ACTION_CHANGE_QUORUM",
	7: "ACTION_DEPLOY_CONTRACT",
	8: "ACTION_SET_BATCH_STATUS",
	9: "ACTION_BATCH_TRANSFER",
}

var ActionType_value = map[string]int32{
	"ACTION_INVALID":          0,
	"ACTION_NOTHING":          1,
	"ACTION_ADD_BOARD_MEMBER": 2,
	"ACTION_ADD_PROPOSER":     3,
	"ACTION_REMOVE_USER":      4,
	"ACTION_SLASH_USER":       5,
	"ACTION_CHANGE_QUORUM":    6,
	"ACTION_DEPLOY_CONTRACT":  7,
	"ACTION_SET_BATCH_STATUS": 8,
	"ACTION_BATCH_TRANSFER":   9,
}

func (x ActionType) String() string {
	return proto.EnumName(ActionType_name, int32(x))
}

// Action is a proposed state change awaiting signatures. It is a flat
// tagged union: type selects the variant and only the fields of that
// variant are set. A oneof is deliberately avoided to keep the wire
// codec small.
type Action struct {
	Type ActionType `protobuf:"varint,1,opt,name=type,proto3,enum=wallet.ActionType" json:"type,omitempty"`
	// Target of AddBoardMember, AddProposer, RemoveUser and SlashUser.
	Address []byte `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	// ChangeQuorum payload.
	NewQuorum uint32 `protobuf:"varint,3,opt,name=new_quorum,json=newQuorum,proto3" json:"new_quorum,omitempty"`
	// DeployContract payload.
	Amount   uint64   `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Code     []byte   `protobuf:"bytes,5,opt,name=code,proto3" json:"code,omitempty"`
	Metadata []byte   `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Args     [][]byte `protobuf:"bytes,7,rep,name=args,proto3" json:"args,omitempty"`
	// Batch actions payload.
	BatchId   uint64      `protobuf:"varint,8,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Statuses  []uint32    `protobuf:"varint,9,rep,packed,name=statuses,proto3" json:"statuses,omitempty"`
	Transfers []*Transfer `protobuf:"bytes,10,rep,name=transfers,proto3" json:"transfers,omitempty"`
}

func (m *Action) Reset()         { *m = Action{} }
func (m *Action) String() string { return proto.CompactTextString(m) }
func (*Action) ProtoMessage()    {}

func (m *Action) GetType() ActionType {
	if m != nil {
		return m.Type
	}
	return ActionType_ACTION_INVALID
}

func (m *Action) GetAddress() []byte {
	if m != nil {
		return m.Address
	}
	return nil
}

func (m *Action) GetNewQuorum() uint32 {
	if m != nil {
		return m.NewQuorum
	}
	return 0
}

func (m *Action) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Action) GetCode() []byte {
	if m != nil {
		return m.Code
	}
	return nil
}

func (m *Action) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *Action) GetArgs() [][]byte {
	if m != nil {
		return m.Args
	}
	return nil
}

func (m *Action) GetBatchId() uint64 {
	if m != nil {
		return m.BatchId
	}
	return 0
}

func (m *Action) GetStatuses() []uint32 {
	if m != nil {
		return m.Statuses
	}
	return nil
}

func (m *Action) GetTransfers() []*Transfer {
	if m != nil {
		return m.Transfers
	}
	return nil
}

// Transfer is a single payment within a batch transfer action.
type Transfer struct {
	To     []byte `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Token  []byte `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Amount uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Transfer) Reset()         { *m = Transfer{} }
func (m *Transfer) String() string { return proto.CompactTextString(m) }
func (*Transfer) ProtoMessage()    {}

func (m *Transfer) GetTo() []byte {
	if m != nil {
		return m.To
	}
	return nil
}

func (m *Transfer) GetToken() []byte {
	if m != nil {
		return m.Token
	}
	return nil
}

func (m *Transfer) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// SignerSet keeps the user ids currently backing an action. Order is
// insignificant and ids are unique.
type SignerSet struct {
	Ids []uint64 `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
}

func (m *SignerSet) Reset()         { *m = SignerSet{} }
func (m *SignerSet) String() string { return proto.CompactTextString(m) }
func (*SignerSet) ProtoMessage()    {}

func (m *SignerSet) GetIds() []uint64 {
	if m != nil {
		return m.Ids
	}
	return nil
}

// BatchReport is the per-transfer status outcome of an executed batch
// transfer, tagged with the block height of execution.
type BatchReport struct {
	BatchId     uint64   `protobuf:"varint,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	BlockHeight int64    `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	Statuses    []uint32 `protobuf:"varint,3,rep,packed,name=statuses,proto3" json:"statuses,omitempty"`
}

func (m *BatchReport) Reset()         { *m = BatchReport{} }
func (m *BatchReport) String() string { return proto.CompactTextString(m) }
func (*BatchReport) ProtoMessage()    {}

func (m *BatchReport) GetBatchId() uint64 {
	if m != nil {
		return m.BatchId
	}
	return 0
}

func (m *BatchReport) GetBlockHeight() int64 {
	if m != nil {
		return m.BlockHeight
	}
	return 0
}

func (m *BatchReport) GetStatuses() []uint32 {
	if m != nil {
		return m.Statuses
	}
	return nil
}

func init() {
	proto.RegisterEnum("wallet.ActionType", ActionType_name, ActionType_value)
	proto.RegisterType((*Action)(nil), "wallet.Action")
	proto.RegisterType((*Transfer)(nil), "wallet.Transfer")
	proto.RegisterType((*SignerSet)(nil), "wallet.SignerSet")
	proto.RegisterType((*BatchReport)(nil), "wallet.BatchReport")
}

func (m *Action) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *Action) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if m.Type != 0 {
		dAtA[i] = 0x8
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.Type))
	}
	if len(m.Address) > 0 {
		dAtA[i] = 0x12
		i++
		i = encodeVarintCodec(dAtA, i, uint64(len(m.Address)))
		i += copy(dAtA[i:], m.Address)
	}
	if m.NewQuorum != 0 {
		dAtA[i] = 0x18
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.NewQuorum))
	}
	if m.Amount != 0 {
		dAtA[i] = 0x20
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.Amount))
	}
	if len(m.Code) > 0 {
		dAtA[i] = 0x2a
		i++
		i = encodeVarintCodec(dAtA, i, uint64(len(m.Code)))
		i += copy(dAtA[i:], m.Code)
	}
	if len(m.Metadata) > 0 {
		dAtA[i] = 0x32
		i++
		i = encodeVarintCodec(dAtA, i, uint64(len(m.Metadata)))
		i += copy(dAtA[i:], m.Metadata)
	}
	if len(m.Args) > 0 {
		for _, b := range m.Args {
			dAtA[i] = 0x3a
			i++
			i = encodeVarintCodec(dAtA, i, uint64(len(b)))
			i += copy(dAtA[i:], b)
		}
	}
	if m.BatchId != 0 {
		dAtA[i] = 0x40
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.BatchId))
	}
	if len(m.Statuses) > 0 {
		dAtA2 := make([]byte, len(m.Statuses)*10)
		var j1 int
		for _, num := range m.Statuses {
			for num >= 1<<7 {
				dAtA2[j1] = uint8(uint64(num)&0x7f | 0x80)
				num >>= 7
				j1++
			}
			dAtA2[j1] = uint8(num)
			j1++
		}
		dAtA[i] = 0x4a
		i++
		i = encodeVarintCodec(dAtA, i, uint64(j1))
		i += copy(dAtA[i:], dAtA2[:j1])
	}
	if len(m.Transfers) > 0 {
		for _, msg := range m.Transfers {
			dAtA[i] = 0x52
			i++
			i = encodeVarintCodec(dAtA, i, uint64(msg.Size()))
			n, err := msg.MarshalTo(dAtA[i:])
			if err != nil {
				return 0, err
			}
			i += n
		}
	}
	return i, nil
}

func (m *Transfer) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *Transfer) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if len(m.To) > 0 {
		dAtA[i] = 0xa
		i++
		i = encodeVarintCodec(dAtA, i, uint64(len(m.To)))
		i += copy(dAtA[i:], m.To)
	}
	if len(m.Token) > 0 {
		dAtA[i] = 0x12
		i++
		i = encodeVarintCodec(dAtA, i, uint64(len(m.Token)))
		i += copy(dAtA[i:], m.Token)
	}
	if m.Amount != 0 {
		dAtA[i] = 0x18
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.Amount))
	}
	return i, nil
}

func (m *SignerSet) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *SignerSet) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if len(m.Ids) > 0 {
		dAtA2 := make([]byte, len(m.Ids)*10)
		var j1 int
		for _, num := range m.Ids {
			for num >= 1<<7 {
				dAtA2[j1] = uint8(num&0x7f | 0x80)
				num >>= 7
				j1++
			}
			dAtA2[j1] = uint8(num)
			j1++
		}
		dAtA[i] = 0xa
		i++
		i = encodeVarintCodec(dAtA, i, uint64(j1))
		i += copy(dAtA[i:], dAtA2[:j1])
	}
	return i, nil
}

func (m *BatchReport) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *BatchReport) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if m.BatchId != 0 {
		dAtA[i] = 0x8
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.BatchId))
	}
	if m.BlockHeight != 0 {
		dAtA[i] = 0x10
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.BlockHeight))
	}
	if len(m.Statuses) > 0 {
		dAtA2 := make([]byte, len(m.Statuses)*10)
		var j1 int
		for _, num := range m.Statuses {
			for num >= 1<<7 {
				dAtA2[j1] = uint8(uint64(num)&0x7f | 0x80)
				num >>= 7
				j1++
			}
			dAtA2[j1] = uint8(num)
			j1++
		}
		dAtA[i] = 0x1a
		i++
		i = encodeVarintCodec(dAtA, i, uint64(j1))
		i += copy(dAtA[i:], dAtA2[:j1])
	}
	return i, nil
}

func encodeVarintCodec(dAtA []byte, offset int, v uint64) int {
	for v >= 1<<7 {
		dAtA[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	dAtA[offset] = uint8(v)
	return offset + 1
}

func (m *Action) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.Type != 0 {
		n += 1 + sovCodec(uint64(m.Type))
	}
	l = len(m.Address)
	if l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if m.NewQuorum != 0 {
		n += 1 + sovCodec(uint64(m.NewQuorum))
	}
	if m.Amount != 0 {
		n += 1 + sovCodec(uint64(m.Amount))
	}
	l = len(m.Code)
	if l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	l = len(m.Metadata)
	if l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if len(m.Args) > 0 {
		for _, b := range m.Args {
			l = len(b)
			n += 1 + l + sovCodec(uint64(l))
		}
	}
	if m.BatchId != 0 {
		n += 1 + sovCodec(uint64(m.BatchId))
	}
	if len(m.Statuses) > 0 {
		l = 0
		for _, e := range m.Statuses {
			l += sovCodec(uint64(e))
		}
		n += 1 + sovCodec(uint64(l)) + l
	}
	if len(m.Transfers) > 0 {
		for _, e := range m.Transfers {
			l = e.Size()
			n += 1 + l + sovCodec(uint64(l))
		}
	}
	return n
}

func (m *Transfer) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	l = len(m.To)
	if l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	l = len(m.Token)
	if l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if m.Amount != 0 {
		n += 1 + sovCodec(uint64(m.Amount))
	}
	return n
}

func (m *SignerSet) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if len(m.Ids) > 0 {
		l = 0
		for _, e := range m.Ids {
			l += sovCodec(e)
		}
		n += 1 + sovCodec(uint64(l)) + l
	}
	return n
}

func (m *BatchReport) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.BatchId != 0 {
		n += 1 + sovCodec(uint64(m.BatchId))
	}
	if m.BlockHeight != 0 {
		n += 1 + sovCodec(uint64(m.BlockHeight))
	}
	if len(m.Statuses) > 0 {
		l = 0
		for _, e := range m.Statuses {
			l += sovCodec(uint64(e))
		}
		n += 1 + sovCodec(uint64(l)) + l
	}
	return n
}

func sovCodec(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			break
		}
	}
	return n
}

func (m *Action) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= uint64(b&0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: Action: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: Action: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field Type", wireType)
			}
			m.Type = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.Type |= ActionType(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		case 2:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Address", wireType)
			}
			byteLen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.Address = append(m.Address[:0], dAtA[iNdEx:iNdEx+byteLen]...)
			if m.Address == nil {
				m.Address = []byte{}
			}
			iNdEx += byteLen
		case 3:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field NewQuorum", wireType)
			}
			m.NewQuorum = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.NewQuorum |= uint32(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		case 4:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field Amount", wireType)
			}
			m.Amount = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.Amount |= uint64(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		case 5:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Code", wireType)
			}
			byteLen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.Code = append(m.Code[:0], dAtA[iNdEx:iNdEx+byteLen]...)
			if m.Code == nil {
				m.Code = []byte{}
			}
			iNdEx += byteLen
		case 6:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Metadata", wireType)
			}
			byteLen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.Metadata = append(m.Metadata[:0], dAtA[iNdEx:iNdEx+byteLen]...)
			if m.Metadata == nil {
				m.Metadata = []byte{}
			}
			iNdEx += byteLen
		case 7:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Args", wireType)
			}
			byteLen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.Args = append(m.Args, make([]byte, byteLen))
			copy(m.Args[len(m.Args)-1], dAtA[iNdEx:iNdEx+byteLen])
			iNdEx += byteLen
		case 8:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field BatchId", wireType)
			}
			m.BatchId = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.BatchId |= uint64(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		case 9:
			if wireType == 0 {
				var v uint32
				for shift := uint(0); ; shift += 7 {
					if shift >= 64 {
						return ErrIntOverflowCodec
					}
					if iNdEx >= l {
						return io.ErrUnexpectedEOF
					}
					b := dAtA[iNdEx]
					iNdEx++
					v |= uint32(b&0x7F) << shift
					if b < 0x80 {
						break
					}
				}
				m.Statuses = append(m.Statuses, v)
			} else if wireType == 2 {
				packedLen, err := decodeLenCodec(dAtA, &iNdEx, l)
				if err != nil {
					return err
				}
				postIndex := iNdEx + packedLen
				for iNdEx < postIndex {
					var v uint32
					for shift := uint(0); ; shift += 7 {
						if shift >= 64 {
							return ErrIntOverflowCodec
						}
						if iNdEx >= l {
							return io.ErrUnexpectedEOF
						}
						b := dAtA[iNdEx]
						iNdEx++
						v |= uint32(b&0x7F) << shift
						if b < 0x80 {
							break
						}
					}
					m.Statuses = append(m.Statuses, v)
				}
			} else {
				return fmt.Errorf("proto: wrong wireType = %d for field Statuses", wireType)
			}
		case 10:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Transfers", wireType)
			}
			msglen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.Transfers = append(m.Transfers, &Transfer{})
			if err := m.Transfers[len(m.Transfers)-1].Unmarshal(dAtA[iNdEx : iNdEx+msglen]); err != nil {
				return err
			}
			iNdEx += msglen
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}
	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (m *Transfer) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= uint64(b&0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: Transfer: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: Transfer: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field To", wireType)
			}
			byteLen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.To = append(m.To[:0], dAtA[iNdEx:iNdEx+byteLen]...)
			if m.To == nil {
				m.To = []byte{}
			}
			iNdEx += byteLen
		case 2:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Token", wireType)
			}
			byteLen, err := decodeLenCodec(dAtA, &iNdEx, l)
			if err != nil {
				return err
			}
			m.Token = append(m.Token[:0], dAtA[iNdEx:iNdEx+byteLen]...)
			if m.Token == nil {
				m.Token = []byte{}
			}
			iNdEx += byteLen
		case 3:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field Amount", wireType)
			}
			m.Amount = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.Amount |= uint64(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}
	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (m *SignerSet) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= uint64(b&0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: SignerSet: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: SignerSet: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType == 0 {
				var v uint64
				for shift := uint(0); ; shift += 7 {
					if shift >= 64 {
						return ErrIntOverflowCodec
					}
					if iNdEx >= l {
						return io.ErrUnexpectedEOF
					}
					b := dAtA[iNdEx]
					iNdEx++
					v |= uint64(b&0x7F) << shift
					if b < 0x80 {
						break
					}
				}
				m.Ids = append(m.Ids, v)
			} else if wireType == 2 {
				packedLen, err := decodeLenCodec(dAtA, &iNdEx, l)
				if err != nil {
					return err
				}
				postIndex := iNdEx + packedLen
				for iNdEx < postIndex {
					var v uint64
					for shift := uint(0); ; shift += 7 {
						if shift >= 64 {
							return ErrIntOverflowCodec
						}
						if iNdEx >= l {
							return io.ErrUnexpectedEOF
						}
						b := dAtA[iNdEx]
						iNdEx++
						v |= uint64(b&0x7F) << shift
						if b < 0x80 {
							break
						}
					}
					m.Ids = append(m.Ids, v)
				}
			} else {
				return fmt.Errorf("proto: wrong wireType = %d for field Ids", wireType)
			}
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}
	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (m *BatchReport) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= uint64(b&0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: BatchReport: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: BatchReport: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field BatchId", wireType)
			}
			m.BatchId = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.BatchId |= uint64(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		case 2:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field BlockHeight", wireType)
			}
			m.BlockHeight = 0
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				m.BlockHeight |= int64(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
		case 3:
			if wireType == 0 {
				var v uint32
				for shift := uint(0); ; shift += 7 {
					if shift >= 64 {
						return ErrIntOverflowCodec
					}
					if iNdEx >= l {
						return io.ErrUnexpectedEOF
					}
					b := dAtA[iNdEx]
					iNdEx++
					v |= uint32(b&0x7F) << shift
					if b < 0x80 {
						break
					}
				}
				m.Statuses = append(m.Statuses, v)
			} else if wireType == 2 {
				packedLen, err := decodeLenCodec(dAtA, &iNdEx, l)
				if err != nil {
					return err
				}
				postIndex := iNdEx + packedLen
				for iNdEx < postIndex {
					var v uint32
					for shift := uint(0); ; shift += 7 {
						if shift >= 64 {
							return ErrIntOverflowCodec
						}
						if iNdEx >= l {
							return io.ErrUnexpectedEOF
						}
						b := dAtA[iNdEx]
						iNdEx++
						v |= uint32(b&0x7F) << shift
						if b < 0x80 {
							break
						}
					}
					m.Statuses = append(m.Statuses, v)
				}
			} else {
				return fmt.Errorf("proto: wrong wireType = %d for field Statuses", wireType)
			}
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}
	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

// decodeLenCodec reads a length prefix and validates it against the
// remaining buffer.
func decodeLenCodec(dAtA []byte, iNdEx *int, l int) (int, error) {
	var length int
	for shift := uint(0); ; shift += 7 {
		if shift >= 64 {
			return 0, ErrIntOverflowCodec
		}
		if *iNdEx >= l {
			return 0, io.ErrUnexpectedEOF
		}
		b := dAtA[*iNdEx]
		*iNdEx++
		length |= int(b&0x7F) << shift
		if b < 0x80 {
			break
		}
	}
	if length < 0 {
		return 0, ErrInvalidLengthCodec
	}
	if *iNdEx+length > l {
		return 0, io.ErrUnexpectedEOF
	}
	return length, nil
}

func skipCodec(dAtA []byte) (n int, err error) {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return 0, ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return 0, io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= (uint64(b) & 0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		wireType := int(wire & 0x7)
		switch wireType {
		case 0:
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return 0, ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return 0, io.ErrUnexpectedEOF
				}
				iNdEx++
				if dAtA[iNdEx-1] < 0x80 {
					break
				}
			}
			return iNdEx, nil
		case 1:
			iNdEx += 8
			return iNdEx, nil
		case 2:
			var length int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return 0, ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return 0, io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				length |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if length < 0 {
				return 0, ErrInvalidLengthCodec
			}
			iNdEx += length
			return iNdEx, nil
		case 3, 4:
			return 0, fmt.Errorf("proto: group encoding is deprecated")
		case 5:
			iNdEx += 4
			return iNdEx, nil
		default:
			return 0, fmt.Errorf("proto: illegal wireType %d", wireType)
		}
	}
	panic("unreachable")
}

var (
	ErrInvalidLengthCodec = fmt.Errorf("proto: negative length found during unmarshaling")
	ErrIntOverflowCodec   = fmt.Errorf("proto: integer overflow")
)
