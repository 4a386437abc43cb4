package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/domain/mocks"
	"github.com/debay/auctionclient/service/chain"
)

const marketplaceAddr = domain.Address("0xbb00000000000000000000000000000000000001")

type bidTestEnv struct {
	marketplace *mocks.MarketplaceRepo
	payToken    *mocks.PayTokenRepo
	nftApprover *mocks.NftApproverRepo
	listings    *mocks.ListingUseCase
	usecase     domain.BidUseCase
}

func newBidTestEnv() *bidTestEnv {
	env := &bidTestEnv{
		marketplace: &mocks.MarketplaceRepo{},
		payToken:    &mocks.PayTokenRepo{},
		nftApprover: &mocks.NftApproverRepo{},
		listings:    &mocks.ListingUseCase{},
	}
	env.usecase = NewBidUseCase(&BidUseCaseCfg{
		Marketplace: env.marketplace,
		PayToken:    env.payToken,
		NftApprover: env.nftApprover,
		Listings:    env.listings,
	})
	return env
}

func testSession() *domain.Session {
	return &domain.Session{
		Account: "0xcc00000000000000000000000000000000000001",
		ChainId: 1,
		Signer:  &bind.TransactOpts{},
	}
}

func receiptWithHash(hex string) *types.Receipt {
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		TxHash: common.HexToHash(hex),
	}
}

func Test_bidUseCase_SubmitBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	session := testSession()
	amount := big.NewInt(2e16)

	env.marketplace.On("ChainId").Return(domain.ChainId(1))
	env.marketplace.On("Address").Return(marketplaceAddr)

	var calls []string
	env.payToken.On("Approve", mock.Anything, session.Signer, marketplaceAddr, amount).
		Run(func(args mock.Arguments) { calls = append(calls, "approve") }).
		Return(receiptWithHash("0x01"), nil)
	env.marketplace.On("PlaceBid", mock.Anything, session.Signer, domain.ListingId(7), amount).
		Run(func(args mock.Arguments) { calls = append(calls, "bid") }).
		Return(receiptWithHash("0x02"), nil)
	env.listings.On("Synchronize", mock.Anything).Return([]*domain.EnrichedListing{}, nil)

	outcome, err := env.usecase.SubmitBid(ctx, session, domain.ListingId(7), amount)
	req.NoError(err)

	// the allowance must confirm before the bid goes out
	req.Equal([]string{"approve", "bid"}, calls)
	req.True(outcome.AllowanceGranted)
	req.NotEmpty(outcome.ApproveTxHash)
	req.NotEmpty(outcome.ActionTxHash)
	env.listings.AssertCalled(t, "Synchronize", mock.Anything)
}

func Test_bidUseCase_SubmitBid_inputGuards(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	env.marketplace.On("ChainId").Return(domain.ChainId(1))
	session := testSession()

	tests := []struct {
		name   string
		amount *big.Int
	}{
		{name: "nil amount", amount: nil},
		{name: "zero amount", amount: big.NewInt(0)},
		{name: "negative amount", amount: big.NewInt(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.usecase.SubmitBid(ctx, session, 1, tt.amount)
			req.True(errors.Is(err, domain.ErrInvalidBidInput))
		})
	}

	// guards reject before any network call happens
	env.payToken.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	env.marketplace.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_bidUseCase_SubmitBid_sessionGuards(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	env.marketplace.On("ChainId").Return(domain.ChainId(1))
	amount := big.NewInt(1)

	_, err := env.usecase.SubmitBid(ctx, nil, 1, amount)
	req.True(errors.Is(err, domain.ErrNoSession))

	_, err = env.usecase.SubmitBid(ctx, &domain.Session{Account: "0xcc", ChainId: 1}, 1, amount)
	req.True(errors.Is(err, domain.ErrNoSession))

	wrongChain := testSession()
	wrongChain.ChainId = 4
	_, err = env.usecase.SubmitBid(ctx, wrongChain, 1, amount)
	req.True(errors.Is(err, domain.ErrNetworkMismatch))

	env.payToken.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_bidUseCase_SubmitBid_bidRevertKeepsAllowance(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	session := testSession()
	amount := big.NewInt(2e16)

	env.marketplace.On("ChainId").Return(domain.ChainId(1))
	env.marketplace.On("Address").Return(marketplaceAddr)
	env.payToken.On("Approve", mock.Anything, session.Signer, marketplaceAddr, amount).
		Return(receiptWithHash("0x01"), nil)
	env.marketplace.On("PlaceBid", mock.Anything, session.Signer, domain.ListingId(7), amount).
		Return(nil, chain.ErrExecutionReverted)

	outcome, err := env.usecase.SubmitBid(ctx, session, domain.ListingId(7), amount)
	req.True(errors.Is(err, domain.ErrTransactionRejected))
	req.True(outcome.AllowanceGranted)
	req.NotEmpty(outcome.ApproveTxHash)
	req.Empty(outcome.ActionTxHash)
	env.listings.AssertNotCalled(t, "Synchronize", mock.Anything)
}

func Test_bidUseCase_SubmitBid_approveRejected(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	session := testSession()
	amount := big.NewInt(2e16)

	env.marketplace.On("ChainId").Return(domain.ChainId(1))
	env.marketplace.On("Address").Return(marketplaceAddr)
	env.payToken.On("Approve", mock.Anything, session.Signer, marketplaceAddr, amount).
		Return(nil, errors.New("user denied"))

	outcome, err := env.usecase.SubmitBid(ctx, session, domain.ListingId(7), amount)
	req.True(errors.Is(err, domain.ErrTransactionRejected))
	req.False(outcome.AllowanceGranted)
	env.marketplace.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_bidUseCase_CreateListing(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	session := testSession()
	params := &domain.CreateListingParams{
		Reserve:      big.NewInt(1e18),
		StartPrice:   big.NewInt(2e16),
		DurationDays: 7,
		TokenId:      domain.TokenId("3"),
		Nft:          "0xdd00000000000000000000000000000000000001",
	}

	env.marketplace.On("ChainId").Return(domain.ChainId(1))
	env.marketplace.On("Address").Return(marketplaceAddr)

	var calls []string
	env.nftApprover.On("SetApprovalForAll", mock.Anything, session.Signer, params.Nft, marketplaceAddr, true).
		Run(func(args mock.Arguments) { calls = append(calls, "approve") }).
		Return(receiptWithHash("0x01"), nil)
	env.marketplace.On("CreateListing", mock.Anything, session.Signer, params).
		Run(func(args mock.Arguments) { calls = append(calls, "create") }).
		Return(receiptWithHash("0x02"), nil)
	env.listings.On("Synchronize", mock.Anything).Return([]*domain.EnrichedListing{}, nil)

	outcome, err := env.usecase.CreateListing(ctx, session, params)
	req.NoError(err)
	req.Equal([]string{"approve", "create"}, calls)
	req.True(outcome.AllowanceGranted)
}

func Test_bidUseCase_CreateListing_paramGuards(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	env := newBidTestEnv()
	session := testSession()

	_, err := env.usecase.CreateListing(ctx, session, nil)
	req.True(errors.Is(err, domain.ErrBadParamInput))

	_, err = env.usecase.CreateListing(ctx, session, &domain.CreateListingParams{
		Reserve:      big.NewInt(1),
		StartPrice:   big.NewInt(0),
		DurationDays: 7,
		TokenId:      domain.TokenId("3"),
		Nft:          "0xdd00000000000000000000000000000000000001",
	})
	req.True(errors.Is(err, domain.ErrBadParamInput))

	env.nftApprover.AssertNotCalled(t, "SetApprovalForAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
