package repository

import (
	"errors"
	"math/big"
	"testing"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/service/chain"
)

// fakeChainClient serves canned outputs per method, recording what was asked.
type fakeChainClient struct {
	outs    map[string][]interface{}
	callErr error
	methods []string
}

func (f *fakeChainClient) Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi ethabi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	f.methods = append(f.methods, method)
	if f.callErr != nil {
		return nil, f.callErr
	}
	return f.outs[method], nil
}

func (f *fakeChainClient) Transact(c bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi ethabi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChainClient) WaitMined(c bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error) {
	return nil, errors.New("not implemented")
}

var _ chain.Client = (*fakeChainClient)(nil)

func listingOutputs(state interface{}) []interface{} {
	return []interface{}{
		big.NewInt(1),
		common.HexToAddress("0xAA00000000000000000000000000000000000001"),
		common.HexToAddress("0xAA00000000000000000000000000000000000002"),
		big.NewInt(7),
		state,
		big.NewInt(2e16),
		big.NewInt(1700000000),
	}
}

func newTestRepo(fake *fakeChainClient, states domain.StateMapping) domain.MarketplaceRepo {
	return NewMarketplaceRepo(&MarketplaceRepoCfg{
		ChainId: 1,
		Address: "0xbb00000000000000000000000000000000000001",
		Chain:   fake,
		States:  states,
	})
}

func Test_marketplaceRepo_ListingCount(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	fake := &fakeChainClient{outs: map[string][]interface{}{
		"listingCount": {big.NewInt(3)},
	}}
	repo := newTestRepo(fake, domain.NumericStateMapping())

	count, err := repo.ListingCount(ctx)
	req.NoError(err)
	req.Equal(uint64(3), count)
	req.Equal([]string{"listingCount"}, fake.methods)
}

func Test_marketplaceRepo_GetListing_numericState(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	fake := &fakeChainClient{outs: map[string][]interface{}{
		"listings": listingOutputs(uint8(1)),
	}}
	repo := newTestRepo(fake, domain.NumericStateMapping())

	listing, err := repo.GetListing(ctx, 1)
	req.NoError(err)
	req.Equal(domain.ListingId(1), listing.ListingId)
	req.Equal(domain.Address("0xaa00000000000000000000000000000000000001"), listing.Seller)
	req.Equal(domain.Address("0xaa00000000000000000000000000000000000002"), listing.Nft)
	req.Equal(domain.TokenId("7"), listing.TokenId)
	req.Equal(domain.AuctionStateOpen, listing.AuctionState)
	req.Equal(big.NewInt(2e16), listing.CurrentPrice)
	req.Equal(int64(1700000000), listing.ClosingTime)
}

func Test_marketplaceRepo_GetListing_stringState(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	fake := &fakeChainClient{outs: map[string][]interface{}{
		"listings": listingOutputs("OPEN"),
	}}
	repo := newTestRepo(fake, domain.StringStateMapping())

	listing, err := repo.GetListing(ctx, 1)
	req.NoError(err)
	req.Equal(domain.AuctionStateOpen, listing.AuctionState)
}

func Test_marketplaceRepo_GetListing_unknownState(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	fake := &fakeChainClient{outs: map[string][]interface{}{
		"listings": listingOutputs(uint8(9)),
	}}
	repo := newTestRepo(fake, domain.NumericStateMapping())

	_, err := repo.GetListing(ctx, 1)
	req.True(errors.Is(err, domain.ErrUnknownAuctionState))
}

func Test_marketplaceRepo_readFailuresWrapped(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	fake := &fakeChainClient{callErr: errors.New("rpc down")}
	repo := newTestRepo(fake, domain.NumericStateMapping())

	_, err := repo.ListingCount(ctx)
	req.True(errors.Is(err, domain.ErrLedgerReadFailure))

	_, err = repo.GetListing(ctx, 1)
	req.True(errors.Is(err, domain.ErrLedgerReadFailure))
}
