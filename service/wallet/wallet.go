package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/goroutine"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
)

type ProviderCfg struct {
	KeystoreDir string
	Passphrase  string
}

// keystoreProvider implements domain.WalletProvider on top of a go-ethereum
// keystore directory. Keystore arrival/drop notifications are surfaced as
// account-changed wallet events.
type keystoreProvider struct {
	ks         *keystore.KeyStore
	passphrase string
	events     chan domain.WalletEvent
}

func NewKeystoreProvider(cfg *ProviderCfg) domain.WalletProvider {
	ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	p := &keystoreProvider{
		ks:         ks,
		passphrase: cfg.Passphrase,
		events:     make(chan domain.WalletEvent, 8),
	}
	goroutine.RecoverableGo(p.watch)
	return p
}

func (p *keystoreProvider) watch() {
	sink := make(chan accounts.WalletEvent, 8)
	sub := p.ks.Subscribe(sink)
	defer sub.Unsubscribe()
	for ev := range sink {
		if ev.Kind != accounts.WalletArrived {
			continue
		}
		accs := ev.Wallet.Accounts()
		if len(accs) == 0 {
			continue
		}
		p.events <- domain.WalletEvent{
			Type:    domain.WalletEventAccountChanged,
			Account: domain.Address(accs[0].Address.Hex()).ToLower(),
		}
	}
}

func (p *keystoreProvider) RequestAccounts(ctx bCtx.Ctx) ([]domain.Address, error) {
	accs := p.ks.Accounts()
	if len(accs) == 0 {
		return nil, xerrors.New("keystore holds no accounts")
	}
	addrs := make([]domain.Address, 0, len(accs))
	for _, a := range accs {
		addrs = append(addrs, domain.Address(a.Address.Hex()).ToLower())
	}
	return addrs, nil
}

func (p *keystoreProvider) GetSigner(ctx bCtx.Ctx, account domain.Address, chainId domain.ChainId) (*bind.TransactOpts, error) {
	acc, err := p.ks.Find(accounts.Account{Address: common.HexToAddress(string(account))})
	if err != nil {
		ctx.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("keystore.Find failed")
		return nil, err
	}
	if err := p.ks.Unlock(acc, p.passphrase); err != nil {
		ctx.WithField("err", err).Error("keystore.Unlock failed")
		return nil, err
	}
	return bind.NewKeyStoreTransactorWithChainID(p.ks, acc, big.NewInt(int64(chainId)))
}

func (p *keystoreProvider) Events() <-chan domain.WalletEvent {
	return p.events
}
