package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/debay/auctionclient/base/ctx"
)

// PayTokenRepo wraps the ERC-20 payment token used for bids. Approve blocks
// until the transaction is mined.
type PayTokenRepo interface {
	Address() Address
	Approve(c bCtx.Ctx, opts *bind.TransactOpts, spender Address, amount *big.Int) (*types.Receipt, error)
	Allowance(c bCtx.Ctx, owner, spender Address) (*big.Int, error)
	BalanceOf(c bCtx.Ctx, owner Address) (*big.Int, error)
}

// NftApproverRepo grants the marketplace operator rights over a seller's
// tokens before a listing is created.
type NftApproverRepo interface {
	SetApprovalForAll(c bCtx.Ctx, opts *bind.TransactOpts, nft, operator Address, approved bool) (*types.Receipt, error)
}
