package domain

import (
	"math/big"

	bCtx "github.com/debay/auctionclient/base/ctx"
)

// TransactionOutcome reports how far the allowance-then-bid sequence got.
// AllowanceGranted stays true when the approve confirmed but the follow-up
// failed: the two steps are independent transactions with no ledger-level
// atomicity, so the granted allowance is left as-is and surfaced here.
type TransactionOutcome struct {
	ApproveTxHash    TxHash `json:"approveTxHash,omitempty"`
	ActionTxHash     TxHash `json:"actionTxHash,omitempty"`
	AllowanceGranted bool   `json:"allowanceGranted"`
}

type BidUseCase interface {
	// SubmitBid grants the marketplace a payment-token allowance of amount,
	// waits for confirmation, places the bid, waits again, then triggers a
	// listing re-synchronization. Input guards reject locally before any
	// network call.
	SubmitBid(c bCtx.Ctx, session *Session, listingId ListingId, amount *big.Int) (*TransactionOutcome, error)
	// CreateListing approves the marketplace as nft operator, then creates
	// the listing, each step confirmed before the next.
	CreateListing(c bCtx.Ctx, session *Session, params *CreateListingParams) (*TransactionOutcome, error)
}
