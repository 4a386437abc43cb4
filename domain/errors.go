package domain

import (
	"errors"

	"golang.org/x/xerrors"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrNoSession means no wallet is connected, so there is no signer
	ErrNoSession = errors.New("no connected session")
	// ErrInvalidBidInput means the bid amount is missing or non-positive
	ErrInvalidBidInput = errors.New("invalid bid amount")
	// ErrMetadataUnavailable means some step of token metadata resolution failed
	ErrMetadataUnavailable = errors.New("token metadata unavailable")
	// ErrLedgerReadFailure means listing enumeration or a listing read failed
	ErrLedgerReadFailure = errors.New("marketplace read failed")
	// ErrTransactionRejected means the wallet declined or the chain reverted a transaction
	ErrTransactionRejected = errors.New("transaction rejected")
	// ErrNetworkMismatch means a session built for one chain was used against another
	ErrNetworkMismatch = errors.New("session bound to different network")

	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrUnknownAuctionState = errors.New("unknown auction state")
)

// WrapKind attaches a cause to one of the sentinel error kinds above while
// keeping errors.Is(err, kind) true for callers switching on the kind.
func WrapKind(kind error, cause error) error {
	if cause == nil {
		return kind
	}
	return xerrors.Errorf("%v: %w", cause, kind)
}
