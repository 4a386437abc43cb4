package repository

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/debay/auctionclient/base/abi"
	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/service/chain"
)

type MarketplaceRepoCfg struct {
	ChainId domain.ChainId
	Address domain.Address
	Chain   chain.Client
	States  domain.StateMapping
}

type marketplaceRepo struct {
	chainId domain.ChainId
	address domain.Address
	chain   chain.Client
	states  domain.StateMapping
	abi     ethabi.ABI
}

func NewMarketplaceRepo(cfg *MarketplaceRepoCfg) domain.MarketplaceRepo {
	_abi := abi.MarketplaceABI
	if cfg.States.Encoding == domain.StateEncodingString {
		_abi = abi.MarketplaceStringStateABI
	}
	return &marketplaceRepo{
		chainId: cfg.ChainId,
		address: cfg.Address,
		chain:   cfg.Chain,
		states:  cfg.States,
		abi:     _abi,
	}
}

func (r *marketplaceRepo) ChainId() domain.ChainId {
	return r.chainId
}

func (r *marketplaceRepo) Address() domain.Address {
	return r.address
}

func (r *marketplaceRepo) ListingCount(c bCtx.Ctx) (uint64, error) {
	outs, err := r.chain.Call(c, r.chainId, common.HexToAddress(r.address.ToLowerStr()), nil, r.abi, "listingCount")
	if err != nil {
		c.WithField("err", err).Error("chain.Call listingCount failed")
		return 0, domain.WrapKind(domain.ErrLedgerReadFailure, err)
	}
	count, ok := outs[0].(*big.Int)
	if !ok {
		return 0, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected listingCount output %T", outs[0]))
	}
	return count.Uint64(), nil
}

func (r *marketplaceRepo) GetListing(c bCtx.Ctx, id domain.ListingId) (*domain.Listing, error) {
	outs, err := r.chain.Call(c, r.chainId, common.HexToAddress(r.address.ToLowerStr()), nil, r.abi, "listings", new(big.Int).SetUint64(uint64(id)))
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("chain.Call listings failed")
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, err)
	}
	if len(outs) != 7 {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected listings output arity %d", len(outs)))
	}

	listingId, ok := outs[0].(*big.Int)
	if !ok {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected listingId output %T", outs[0]))
	}
	seller, ok := outs[1].(common.Address)
	if !ok {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected seller output %T", outs[1]))
	}
	nft, ok := outs[2].(common.Address)
	if !ok {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected nft output %T", outs[2]))
	}
	tokenId, ok := outs[3].(*big.Int)
	if !ok {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected tokenId output %T", outs[3]))
	}
	state, err := r.states.FromRaw(outs[4])
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("states.FromRaw failed")
		return nil, err
	}
	currentPrice, ok := outs[5].(*big.Int)
	if !ok {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected currentPrice output %T", outs[5]))
	}
	closingTime, ok := outs[6].(*big.Int)
	if !ok {
		return nil, domain.WrapKind(domain.ErrLedgerReadFailure, xerrors.Errorf("unexpected closingTime output %T", outs[6]))
	}

	return &domain.Listing{
		ListingId:    domain.ListingId(listingId.Uint64()),
		Seller:       domain.Address(seller.Hex()).ToLower(),
		Nft:          domain.Address(nft.Hex()).ToLower(),
		TokenId:      domain.TokenId(tokenId.String()),
		AuctionState: state,
		CurrentPrice: currentPrice,
		ClosingTime:  closingTime.Int64(),
	}, nil
}

func (r *marketplaceRepo) PlaceBid(c bCtx.Ctx, opts *bind.TransactOpts, id domain.ListingId, amount *big.Int) (*types.Receipt, error) {
	tx, err := r.chain.Transact(c, r.chainId, opts, common.HexToAddress(r.address.ToLowerStr()), r.abi, "bid", new(big.Int).SetUint64(uint64(id)), amount)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("chain.Transact bid failed")
		return nil, err
	}
	return r.chain.WaitMined(c, r.chainId, tx)
}

func (r *marketplaceRepo) CreateListing(c bCtx.Ctx, opts *bind.TransactOpts, params *domain.CreateListingParams) (*types.Receipt, error) {
	tokenId, err := params.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	tx, err := r.chain.Transact(c, r.chainId, opts, common.HexToAddress(r.address.ToLowerStr()), r.abi, "createListing",
		params.Reserve,
		params.StartPrice,
		new(big.Int).SetUint64(params.DurationDays),
		tokenId,
		common.HexToAddress(params.Nft.ToLowerStr()),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":     params.Nft,
			"tokenId": params.TokenId,
			"err":     err,
		}).Error("chain.Transact createListing failed")
		return nil, err
	}
	return r.chain.WaitMined(c, r.chainId, tx)
}
