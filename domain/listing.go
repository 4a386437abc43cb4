package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"

	bCtx "github.com/debay/auctionclient/base/ctx"
)

// AuctionState is the canonical lifecycle tag for a listing. The raw on-chain
// representation has varied across marketplace deployments (a numeric enum in
// some, a string literal in others) so repositories map through a
// deployment-configured StateMapping instead of comparing raw values.
type AuctionState string

const (
	AuctionStateCreated   AuctionState = "created"
	AuctionStateOpen      AuctionState = "open"
	AuctionStateClosed    AuctionState = "closed"
	AuctionStateCancelled AuctionState = "cancelled"
)

type StateEncoding string

const (
	StateEncodingNumeric StateEncoding = "numeric"
	StateEncodingString  StateEncoding = "string"
)

// StateMapping translates the ledger's raw auction state into the canonical
// enum. Codes is keyed by the raw value's string form: numeric codes like "1"
// for numeric deployments, literals like "OPEN" for string deployments.
type StateMapping struct {
	Encoding StateEncoding
	Codes    map[string]AuctionState
}

// NumericStateMapping matches deployments whose listings getter returns the
// state as a uint8 enum.
func NumericStateMapping() StateMapping {
	return StateMapping{
		Encoding: StateEncodingNumeric,
		Codes: map[string]AuctionState{
			"0": AuctionStateCreated,
			"1": AuctionStateOpen,
			"2": AuctionStateClosed,
			"3": AuctionStateCancelled,
		},
	}
}

// StringStateMapping matches deployments whose listings getter returns the
// state as a string literal.
func StringStateMapping() StateMapping {
	return StateMapping{
		Encoding: StateEncodingString,
		Codes: map[string]AuctionState{
			"CREATED":   AuctionStateCreated,
			"OPEN":      AuctionStateOpen,
			"CLOSED":    AuctionStateClosed,
			"CANCELLED": AuctionStateCancelled,
		},
	}
}

func (m StateMapping) FromRaw(raw interface{}) (AuctionState, error) {
	var key string
	switch v := raw.(type) {
	case string:
		key = v
	case uint8:
		key = fmt.Sprintf("%d", v)
	case *big.Int:
		key = v.String()
	default:
		return "", WrapKind(ErrUnknownAuctionState, fmt.Errorf("raw state type %T", raw))
	}
	state, ok := m.Codes[key]
	if !ok {
		return "", WrapKind(ErrUnknownAuctionState, fmt.Errorf("raw state %q", key))
	}
	return state, nil
}

type ListingId uint64

// Listing is one auctionable item record as read from the marketplace
// contract. The client never mutates it and never keeps it beyond one
// synchronization pass.
type Listing struct {
	ListingId    ListingId
	Seller       Address
	Nft          Address
	TokenId      TokenId
	AuctionState AuctionState
	CurrentPrice *big.Int
	ClosingTime  int64
}

// EnrichedListing is the display-ready snapshot entry, rebuilt from scratch
// on every pass rather than patched in place.
type EnrichedListing struct {
	Listing
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ImageUrl     string          `json:"imageUrl"`
	DisplayPrice decimal.Decimal `json:"displayPrice"`
}

type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusLoading SyncStatus = "loading"
	SyncStatusReady   SyncStatus = "ready"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncState is the value object handed to the display boundary over a single
// update channel, replacing the previous snapshot atomically.
type SyncState struct {
	Status   SyncStatus
	Listings []*EnrichedListing
	Err      error
}

type CreateListingParams struct {
	Reserve      *big.Int
	StartPrice   *big.Int
	DurationDays uint64
	TokenId      TokenId
	Nft          Address
}

// MarketplaceRepo reads and mutates marketplace contract state. Mutating
// calls block until the transaction is mined and return its receipt.
type MarketplaceRepo interface {
	ChainId() ChainId
	Address() Address
	ListingCount(bCtx.Ctx) (uint64, error)
	GetListing(bCtx.Ctx, ListingId) (*Listing, error)
	PlaceBid(bCtx.Ctx, *bind.TransactOpts, ListingId, *big.Int) (*types.Receipt, error)
	CreateListing(bCtx.Ctx, *bind.TransactOpts, *CreateListingParams) (*types.Receipt, error)
}

type ListingUseCase interface {
	// Synchronize returns the open listings enriched with metadata and
	// display prices, ordered by ascending listing id. Calls arriving while
	// a pass is in flight join that pass instead of starting another.
	Synchronize(bCtx.Ctx) ([]*EnrichedListing, error)
	// Latest returns the latest completed snapshot without touching the chain.
	Latest() SyncState
	// Updates delivers SyncState transitions, latest value wins.
	Updates() <-chan SyncState
}
