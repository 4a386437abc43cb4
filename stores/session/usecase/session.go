package usecase

import (
	"sync"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/goroutine"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
)

type SessionUseCaseCfg struct {
	Wallet domain.WalletProvider
	// ChainId is the network the client targets on first connect.
	ChainId domain.ChainId
}

type sessionUseCase struct {
	wallet domain.WalletProvider

	mu      sync.RWMutex
	chainId domain.ChainId
	session *domain.Session
}

func NewSessionUseCase(cfg *SessionUseCaseCfg) domain.SessionUseCase {
	u := &sessionUseCase{
		wallet:  cfg.Wallet,
		chainId: cfg.ChainId,
	}
	goroutine.RecoverableGo(func() { u.watch(bCtx.Background()) })
	return u
}

// watch drives the session off wallet notifications so account or network
// switches made in the wallet propagate without user action.
func (u *sessionUseCase) watch(c bCtx.Ctx) {
	for ev := range u.wallet.Events() {
		switch ev.Type {
		case domain.WalletEventAccountChanged:
			if _, err := u.OnAccountChanged(c, ev.Account); err != nil {
				c.WithFields(log.Fields{
					"account": ev.Account,
					"err":     err,
				}).Warn("OnAccountChanged failed")
			}
		case domain.WalletEventNetworkChanged:
			if _, err := u.OnNetworkChanged(c, ev.ChainId); err != nil {
				c.WithFields(log.Fields{
					"chainId": ev.ChainId,
					"err":     err,
				}).Warn("OnNetworkChanged failed")
			}
		}
	}
}

func (u *sessionUseCase) Connect(c bCtx.Ctx) (*domain.Session, error) {
	accounts, err := u.wallet.RequestAccounts(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.RequestAccounts failed")
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrNoSession
	}
	u.mu.RLock()
	chainId := u.chainId
	u.mu.RUnlock()
	return u.connect(c, accounts[0], chainId)
}

func (u *sessionUseCase) connect(c bCtx.Ctx, account domain.Address, chainId domain.ChainId) (*domain.Session, error) {
	signer, err := u.wallet.GetSigner(c, account, chainId)
	if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"chainId": chainId,
			"err":     err,
		}).Error("wallet.GetSigner failed")
		return nil, err
	}
	session := &domain.Session{
		Account: account.ToLower(),
		ChainId: chainId,
		Signer:  signer,
	}
	u.mu.Lock()
	u.session = session
	u.mu.Unlock()
	return session, nil
}

func (u *sessionUseCase) Current() *domain.Session {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.session
}

func (u *sessionUseCase) OnAccountChanged(c bCtx.Ctx, account domain.Address) (*domain.Session, error) {
	if account.IsEmpty() {
		u.Disconnect()
		return nil, nil
	}
	u.mu.RLock()
	connected := u.session != nil
	chainId := u.chainId
	u.mu.RUnlock()
	if !connected {
		return nil, nil
	}
	return u.connect(c, account, chainId)
}

func (u *sessionUseCase) OnNetworkChanged(c bCtx.Ctx, chainId domain.ChainId) (*domain.Session, error) {
	// drop the session before rebuilding, the old signer is bound to the old
	// chain and must not sign anything in between
	u.mu.Lock()
	prev := u.session
	u.session = nil
	u.chainId = chainId
	u.mu.Unlock()

	if prev == nil {
		return nil, nil
	}
	return u.connect(c, prev.Account, chainId)
}

func (u *sessionUseCase) Disconnect() {
	u.mu.Lock()
	u.session = nil
	u.mu.Unlock()
}
