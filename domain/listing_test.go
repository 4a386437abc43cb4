package domain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateMappingFromRaw(t *testing.T) {
	req := require.New(t)

	numeric := NumericStateMapping()

	state, err := numeric.FromRaw(uint8(1))
	req.NoError(err)
	req.Equal(AuctionStateOpen, state)

	state, err = numeric.FromRaw(big.NewInt(2))
	req.NoError(err)
	req.Equal(AuctionStateClosed, state)

	_, err = numeric.FromRaw(uint8(9))
	req.True(errors.Is(err, ErrUnknownAuctionState))

	str := StringStateMapping()

	state, err = str.FromRaw("OPEN")
	req.NoError(err)
	req.Equal(AuctionStateOpen, state)

	state, err = str.FromRaw("CANCELLED")
	req.NoError(err)
	req.Equal(AuctionStateCancelled, state)

	_, err = str.FromRaw("NOPE")
	req.True(errors.Is(err, ErrUnknownAuctionState))

	_, err = str.FromRaw(3.14)
	req.True(errors.Is(err, ErrUnknownAuctionState))
}

func TestWrapKindKeepsKindMatchable(t *testing.T) {
	req := require.New(t)

	cause := errors.New("rpc timeout")
	err := WrapKind(ErrLedgerReadFailure, cause)
	req.True(errors.Is(err, ErrLedgerReadFailure))
	req.Contains(err.Error(), "rpc timeout")

	req.Equal(ErrLedgerReadFailure, WrapKind(ErrLedgerReadFailure, nil))
}
