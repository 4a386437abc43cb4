package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/domain/mocks"
)

const testAccount = domain.Address("0xabcdef0000000000000000000000000000000001")

func newTestSessionUseCase(wallet *mocks.WalletProvider) domain.SessionUseCase {
	events := make(chan domain.WalletEvent)
	wallet.On("Events").Return((<-chan domain.WalletEvent)(events)).Maybe()
	return NewSessionUseCase(&SessionUseCaseCfg{
		Wallet:  wallet,
		ChainId: 1,
	})
}

func Test_sessionUseCase_Connect(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := &mocks.WalletProvider{}
	u := newTestSessionUseCase(wallet)

	req.Nil(u.Current())

	signer := &bind.TransactOpts{}
	wallet.On("RequestAccounts", mock.Anything).Return([]domain.Address{testAccount}, nil)
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(1)).Return(signer, nil)

	session, err := u.Connect(ctx)
	req.NoError(err)
	req.Equal(testAccount, session.Account)
	req.Equal(domain.ChainId(1), session.ChainId)
	req.Equal(signer, session.Signer)
	req.Equal(session, u.Current())
}

func Test_sessionUseCase_Connect_noAccounts(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := &mocks.WalletProvider{}
	u := newTestSessionUseCase(wallet)

	wallet.On("RequestAccounts", mock.Anything).Return([]domain.Address{}, nil)

	_, err := u.Connect(ctx)
	req.True(errors.Is(err, domain.ErrNoSession))
	req.Nil(u.Current())
}

func Test_sessionUseCase_OnAccountChanged(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := &mocks.WalletProvider{}
	u := newTestSessionUseCase(wallet)

	other := domain.Address("0xabcdef0000000000000000000000000000000002")
	wallet.On("RequestAccounts", mock.Anything).Return([]domain.Address{testAccount}, nil)
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(1)).Return(&bind.TransactOpts{}, nil)
	wallet.On("GetSigner", mock.Anything, other, domain.ChainId(1)).Return(&bind.TransactOpts{}, nil)

	// switching accounts while disconnected is a no-op
	session, err := u.OnAccountChanged(ctx, other)
	req.NoError(err)
	req.Nil(session)
	req.Nil(u.Current())

	_, err = u.Connect(ctx)
	req.NoError(err)

	session, err = u.OnAccountChanged(ctx, other)
	req.NoError(err)
	req.Equal(other, session.Account)
	req.Equal(other, u.Current().Account)

	// an empty account means the wallet locked, the session drops
	session, err = u.OnAccountChanged(ctx, "")
	req.NoError(err)
	req.Nil(session)
	req.Nil(u.Current())
}

func Test_sessionUseCase_OnNetworkChanged(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := &mocks.WalletProvider{}
	u := newTestSessionUseCase(wallet)

	wallet.On("RequestAccounts", mock.Anything).Return([]domain.Address{testAccount}, nil)
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(1)).Return(&bind.TransactOpts{}, nil)

	// the session is already torn down while the new signer is being built
	var duringRebuild *domain.Session
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(5)).
		Run(func(args mock.Arguments) { duringRebuild = u.Current() }).
		Return(&bind.TransactOpts{}, nil)

	_, err := u.Connect(ctx)
	req.NoError(err)

	session, err := u.OnNetworkChanged(ctx, 5)
	req.NoError(err)
	req.Nil(duringRebuild)
	req.Equal(domain.ChainId(5), session.ChainId)
	req.Equal(domain.ChainId(5), u.Current().ChainId)
}

func Test_sessionUseCase_OnNetworkChanged_signerFailureStaysDisconnected(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := &mocks.WalletProvider{}
	u := newTestSessionUseCase(wallet)

	wallet.On("RequestAccounts", mock.Anything).Return([]domain.Address{testAccount}, nil)
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(1)).Return(&bind.TransactOpts{}, nil)
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(5)).Return(nil, errors.New("unsupported chain"))

	_, err := u.Connect(ctx)
	req.NoError(err)

	_, err = u.OnNetworkChanged(ctx, 5)
	req.Error(err)
	req.Nil(u.Current())
}

func Test_sessionUseCase_walletEvents(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := &mocks.WalletProvider{}
	events := make(chan domain.WalletEvent)
	wallet.On("Events").Return((<-chan domain.WalletEvent)(events))

	u := NewSessionUseCase(&SessionUseCaseCfg{
		Wallet:  wallet,
		ChainId: 1,
	})

	other := domain.Address("0xabcdef0000000000000000000000000000000002")
	wallet.On("RequestAccounts", mock.Anything).Return([]domain.Address{testAccount}, nil)
	wallet.On("GetSigner", mock.Anything, testAccount, domain.ChainId(1)).Return(&bind.TransactOpts{}, nil)
	wallet.On("GetSigner", mock.Anything, other, domain.ChainId(1)).Return(&bind.TransactOpts{}, nil)

	_, err := u.Connect(ctx)
	req.NoError(err)

	events <- domain.WalletEvent{Type: domain.WalletEventAccountChanged, Account: other}

	req.Eventually(func() bool {
		session := u.Current()
		return session != nil && session.Account == other
	}, time.Second, 10*time.Millisecond)
}
