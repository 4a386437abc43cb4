package repository

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/debay/auctionclient/base/abi"
	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/service/abiscan"
	"github.com/debay/auctionclient/service/chain"
)

type NftContractRepoCfg struct {
	ChainId domain.ChainId
	Chain   chain.Client
	Abiscan abiscan.Client
}

type nftContractRepo struct {
	chainId domain.ChainId
	chain   chain.Client
	abiscan abiscan.Client
}

// NewNftContractRepo reads third-party asset contracts. The contract's
// interface is looked up from the explorer api first, falling back to the
// plain erc721 interface when the contract is not verified there.
func NewNftContractRepo(cfg *NftContractRepoCfg) domain.NftContractRepo {
	return &nftContractRepo{
		chainId: cfg.ChainId,
		chain:   cfg.Chain,
		abiscan: cfg.Abiscan,
	}
}

func (r *nftContractRepo) TokenURI(c bCtx.Ctx, nft domain.Address, tokenId domain.TokenId) (string, error) {
	_abi, err := r.abiscan.GetAbi(c, nft)
	if err != nil {
		c.WithFields(log.Fields{
			"nft": nft,
			"err": err,
		}).Warn("abiscan.GetAbi failed, falling back to erc721 abi")
		_abi = abi.ERC721TokenABI
	}

	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	outs, err := r.chain.Call(c, r.chainId, common.HexToAddress(nft.ToLowerStr()), nil, _abi, "tokenURI", id)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":     nft,
			"tokenId": tokenId,
			"err":     err,
		}).Error("chain.Call tokenURI failed")
		return "", err
	}
	uri, ok := outs[0].(string)
	if !ok {
		return "", xerrors.Errorf("unexpected tokenURI output %T", outs[0])
	}
	return uri, nil
}
