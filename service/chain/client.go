package chain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/debay/auctionclient/base/backoff"
	bCtx "github.com/debay/auctionclient/base/ctx"
	baseEthereum "github.com/debay/auctionclient/base/ethereum"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrExecutionReverted means the transaction was mined but its receipt
	// reports failure.
	ErrExecutionReverted = errors.New("execution reverted")
)

const (
	receiptPollPeriod = 2 * time.Second
	// defaultMaxInflight caps concurrent rpc calls per node, public endpoints
	// rate-limit aggressively
	defaultMaxInflight = 10
)

type ClientCfg struct {
	RpcUrls     map[domain.ChainId]string
	MaxInflight int
}

type Client interface {
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(c bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitMined blocks until the transaction is mined and returns its
	// receipt, or ErrExecutionReverted when the receipt reports failure.
	WaitMined(c bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error)
}

type clientImpl struct {
	clients map[domain.ChainId]*baseEthereum.ThrottledClient
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	maxInflight := cfg.MaxInflight
	if maxInflight <= 0 {
		maxInflight = defaultMaxInflight
	}
	var anyerr error
	clients := make(map[domain.ChainId]*baseEthereum.ThrottledClient)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the client start
			continue
		}
		clients[chainId] = baseEthereum.NewThrottledClient(client, maxInflight)
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	bound := bind.NewBoundContract(addr, _abi, client, client, client)
	tx, err := bound.Transact(opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("bound.Transact failed")
		return nil, err
	}
	return tx, nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	bo := backoff.NewConstant(receiptPollPeriod)
	for {
		receipt, err := client.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				ctx.WithField("txHash", tx.Hash().Hex()).Warn("transaction reverted")
				return receipt, ErrExecutionReverted
			}
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"txHash": tx.Hash().Hex(),
				"err":    err,
			}).Error("client.TransactionReceipt failed")
			return nil, err
		}
		if err := bo.Backoff(ctx); err != nil {
			return nil, err
		}
	}
}
