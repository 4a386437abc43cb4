package repository

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/debay/auctionclient/base/abi"
	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/service/chain"
)

type nftApproverRepo struct {
	chainId domain.ChainId
	chain   chain.Client
}

// NewNftApproverRepo grants operator rights on arbitrary asset contracts
// through the shared erc721 approval interface.
func NewNftApproverRepo(chainId domain.ChainId, chainClient chain.Client) domain.NftApproverRepo {
	return &nftApproverRepo{chainId: chainId, chain: chainClient}
}

func (r *nftApproverRepo) SetApprovalForAll(c bCtx.Ctx, opts *bind.TransactOpts, nft, operator domain.Address, approved bool) (*types.Receipt, error) {
	tx, err := r.chain.Transact(c, r.chainId, opts, common.HexToAddress(nft.ToLowerStr()), abi.ERC721TokenABI, "setApprovalForAll",
		common.HexToAddress(operator.ToLowerStr()), approved)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":      nft,
			"operator": operator,
			"err":      err,
		}).Error("chain.Transact setApprovalForAll failed")
		return nil, err
	}
	return r.chain.WaitMined(c, r.chainId, tx)
}
