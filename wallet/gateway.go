package wallet

import (
	multisig "github.com/iov-one/multisig"
	"github.com/iov-one/multisig/errors"
)

// TransactionStatus is the lifecycle state of a single transfer inside a
// batch, as reported by the delegated services.
type TransactionStatus uint32

const (
	StatusNone       TransactionStatus = 0
	StatusPending    TransactionStatus = 1
	StatusInProgress TransactionStatus = 2
	StatusExecuted   TransactionStatus = 3
	StatusRejected   TransactionStatus = 4
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in progress"
	case StatusExecuted:
		return "executed"
	case StatusRejected:
		return "rejected"
	default:
		return "invalid"
	}
}

// TransferBatch is a batch of queued transfers as reported by the safe
// service.
type TransferBatch struct {
	BatchID   uint64
	Transfers []*Transfer
}

// SafeService is the delegated service holding queued deposits. The
// engine reads its current batch and reports final statuses back.
type SafeService interface {
	GetCurrentBatch(ctx multisig.Context) (*TransferBatch, error)
	SetTransactionBatchStatus(ctx multisig.Context, batchID uint64, statuses []TransactionStatus) error
}

// MultiTransferService is the delegated service executing transfer
// batches. It returns one status per submitted transfer.
type MultiTransferService interface {
	BatchTransfer(ctx multisig.Context, transfers []*Transfer) ([]TransactionStatus, error)
}

// Deployer performs delegated code deployment and returns the address of
// the new contract.
type Deployer interface {
	Deploy(ctx multisig.Context, amount uint64, code, metadata []byte, args [][]byte) (multisig.Address, error)
}

// Gateway is the single choke point for every call that leaves the
// engine. Services are runtime bindings: an address plus the client
// speaking its protocol. A call is attempted only if the target address
// was registered as a contract, never against a plain account.
type Gateway struct {
	contracts map[string]bool

	safeAddr multisig.Address
	safe     SafeService

	transferAddr multisig.Address
	transfer     MultiTransferService

	deployer Deployer
}

// NewGateway creates an empty gateway. Services are bound separately.
func NewGateway() *Gateway {
	return &Gateway{contracts: make(map[string]bool)}
}

// RegisterContract marks the address as a known contract. Only
// registered addresses may be bound as services.
func (g *Gateway) RegisterContract(addr multisig.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	g.contracts[string(addr)] = true
	return nil
}

// IsContract returns true for registered contract addresses.
func (g *Gateway) IsContract(addr multisig.Address) bool {
	return g.contracts[string(addr)]
}

// BindSafe binds the safe service. The address must be a registered
// contract.
func (g *Gateway) BindSafe(addr multisig.Address, svc SafeService) error {
	if !g.IsContract(addr) {
		return errors.ErrInput.Newf("%s is not a registered contract", addr)
	}
	g.safeAddr = addr
	g.safe = svc
	return nil
}

// BindMultiTransfer binds the multi-transfer service. The address must
// be a registered contract.
func (g *Gateway) BindMultiTransfer(addr multisig.Address, svc MultiTransferService) error {
	if !g.IsContract(addr) {
		return errors.ErrInput.Newf("%s is not a registered contract", addr)
	}
	g.transferAddr = addr
	g.transfer = svc
	return nil
}

// BindDeployer binds the code deployment backend.
func (g *Gateway) BindDeployer(d Deployer) {
	g.deployer = d
}

// SafeConfigured returns true once a safe service is bound.
func (g *Gateway) SafeConfigured() bool {
	return g.safe != nil
}

// MultiTransferConfigured returns true once a multi-transfer service is
// bound.
func (g *Gateway) MultiTransferConfigured() bool {
	return g.transfer != nil
}

// CurrentBatch fetches the batch currently queued in the safe.
func (g *Gateway) CurrentBatch(ctx multisig.Context) (*TransferBatch, error) {
	if err := g.checkSafe(); err != nil {
		return nil, err
	}
	batch, err := g.safe.GetCurrentBatch(ctx)
	if err != nil {
		return nil, errors.ErrExternalCall.Newf("safe %s: %v", g.safeAddr, err)
	}
	return batch, nil
}

// SetBatchStatus reports final transfer statuses back to the safe.
func (g *Gateway) SetBatchStatus(ctx multisig.Context, batchID uint64, statuses []TransactionStatus) error {
	if err := g.checkSafe(); err != nil {
		return err
	}
	if err := g.safe.SetTransactionBatchStatus(ctx, batchID, statuses); err != nil {
		return errors.ErrExternalCall.Newf("safe %s: %v", g.safeAddr, err)
	}
	return nil
}

// BatchTransfer submits transfers to the multi-transfer service and
// validates the shape of its response.
func (g *Gateway) BatchTransfer(ctx multisig.Context, transfers []*Transfer) ([]TransactionStatus, error) {
	if g.transfer == nil {
		return nil, errors.ErrState.New("multi-transfer service not configured")
	}
	if !g.IsContract(g.transferAddr) {
		return nil, errors.ErrState.Newf("%s is not a registered contract", g.transferAddr)
	}
	statuses, err := g.transfer.BatchTransfer(ctx, transfers)
	if err != nil {
		return nil, errors.ErrExternalCall.Newf("multi-transfer %s: %v", g.transferAddr, err)
	}
	if len(statuses) != len(transfers) {
		return nil, errors.ErrExternalCall.Newf("multi-transfer %s returned %d statuses for %d transfers", g.transferAddr, len(statuses), len(transfers))
	}
	return statuses, nil
}

// Deploy delegates code deployment.
func (g *Gateway) Deploy(ctx multisig.Context, amount uint64, code, metadata []byte, args [][]byte) (multisig.Address, error) {
	if g.deployer == nil {
		return nil, errors.ErrState.New("deployer not configured")
	}
	addr, err := g.deployer.Deploy(ctx, amount, code, metadata, args)
	if err != nil {
		return nil, errors.ErrExternalCall.Newf("deploy: %v", err)
	}
	return addr, nil
}

func (g *Gateway) checkSafe() error {
	if g.safe == nil {
		return errors.ErrState.New("safe service not configured")
	}
	if !g.IsContract(g.safeAddr) {
		return errors.ErrState.Newf("%s is not a registered contract", g.safeAddr)
	}
	return nil
}
