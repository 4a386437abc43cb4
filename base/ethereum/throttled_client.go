package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ThrottledClient caps the number of in-flight rpc calls against one node.
// Synchronization passes fan out per-listing reads, public rpc endpoints
// rate-limit well below that fanout.
type ThrottledClient struct {
	*ethclient.Client
	tokens chan struct{}
}

func NewThrottledClient(client *ethclient.Client, n int) *ThrottledClient {
	tokens := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		tokens <- struct{}{}
	}
	return &ThrottledClient{
		Client: client,
		tokens: tokens,
	}
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.Client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.Client.CodeAt(ctx, address, number)
}

func (c *ThrottledClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.Client.HeaderByNumber(ctx, number)
}

func (c *ThrottledClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.Client.TransactionReceipt(ctx, hash)
}

func (c *ThrottledClient) acquire(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-c.tokens:
		return true
	}
}

func (c *ThrottledClient) release() {
	c.tokens <- struct{}{}
}
