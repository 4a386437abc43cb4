package repository

import (
	"math/big"

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

type PayTokenRepoCfg struct {
	ChainId domain.ChainId
	Address domain.Address
	Chain   chain.Client
}

type payTokenRepo struct {
	chainId domain.ChainId
	address domain.Address
	chain   chain.Client
}

func NewPayTokenRepo(cfg *PayTokenRepoCfg) domain.PayTokenRepo {
	return &payTokenRepo{
		chainId: cfg.ChainId,
		address: cfg.Address,
		chain:   cfg.Chain,
	}
}

func (r *payTokenRepo) Address() domain.Address {
	return r.address
}

func (r *payTokenRepo) Approve(c bCtx.Ctx, opts *bind.TransactOpts, spender domain.Address, amount *big.Int) (*types.Receipt, error) {
	tx, err := r.chain.Transact(c, r.chainId, opts, common.HexToAddress(r.address.ToLowerStr()), abi.ERC20TokenABI, "approve",
		common.HexToAddress(spender.ToLowerStr()), amount)
	if err != nil {
		c.WithFields(log.Fields{
			"spender": spender,
			"err":     err,
		}).Error("chain.Transact approve failed")
		return nil, err
	}
	return r.chain.WaitMined(c, r.chainId, tx)
}

func (r *payTokenRepo) Allowance(c bCtx.Ctx, owner, spender domain.Address) (*big.Int, error) {
	outs, err := r.chain.Call(c, r.chainId, common.HexToAddress(r.address.ToLowerStr()), nil, abi.ERC20TokenABI, "allowance",
		common.HexToAddress(owner.ToLowerStr()), common.HexToAddress(spender.ToLowerStr()))
	if err != nil {
		c.WithField("err", err).Error("chain.Call allowance failed")
		return nil, err
	}
	allowance, ok := outs[0].(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("unexpected allowance output %T", outs[0])
	}
	return allowance, nil
}

func (r *payTokenRepo) BalanceOf(c bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	outs, err := r.chain.Call(c, r.chainId, common.HexToAddress(r.address.ToLowerStr()), nil, abi.ERC20TokenABI, "balanceOf",
		common.HexToAddress(owner.ToLowerStr()))
	if err != nil {
		c.WithField("err", err).Error("chain.Call balanceOf failed")
		return nil, err
	}
	balance, ok := outs[0].(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("unexpected balanceOf output %T", outs[0])
	}
	return balance, nil
}
