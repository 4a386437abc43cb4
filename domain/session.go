package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	bCtx "github.com/debay/auctionclient/base/ctx"
)

// Session binds a connected account to a signer built for one specific chain.
// It is replaced wholesale on account or network changes, never patched.
type Session struct {
	Account Address
	ChainId ChainId
	Signer  *bind.TransactOpts
}

type WalletEventType string

const (
	WalletEventAccountChanged WalletEventType = "accountChanged"
	WalletEventNetworkChanged WalletEventType = "networkChanged"
)

type WalletEvent struct {
	Type    WalletEventType
	Account Address
	ChainId ChainId
}

// WalletProvider exposes the wallet boundary: account discovery, signer
// construction, and change notifications.
type WalletProvider interface {
	RequestAccounts(bCtx.Ctx) ([]Address, error)
	GetSigner(c bCtx.Ctx, account Address, chainId ChainId) (*bind.TransactOpts, error)
	Events() <-chan WalletEvent
}

// SessionUseCase drives the Disconnected -> Connected state machine.
type SessionUseCase interface {
	Connect(bCtx.Ctx) (*Session, error)
	// Current returns the connected session, or nil when disconnected.
	Current() *Session
	// OnAccountChanged rebuilds the session for the new account by re-running
	// the connect flow.
	OnAccountChanged(c bCtx.Ctx, account Address) (*Session, error)
	// OnNetworkChanged tears the session down to disconnected before
	// rebuilding it against the new chain, since contract addresses are
	// network-specific.
	OnNetworkChanged(c bCtx.Ctx, chainId ChainId) (*Session, error)
	Disconnect()
}
