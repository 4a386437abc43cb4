package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var MarketplaceABI abi.ABI

// MarketplaceStringStateABI covers older deployments whose listings getter
// returns the auction state as a string literal instead of a uint8 enum.
var MarketplaceStringStateABI abi.ABI

var marketplaceABI = `[{"type":"function","name":"listingCount","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"listings","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"_listingId"}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"seller"},{"type":"address","name":"nft"},{"type":"uint256","name":"tokenId"},{"type":"uint8","name":"auctionState"},{"type":"uint256","name":"currentPrice"},{"type":"uint256","name":"closingTime"}]},{"type":"function","name":"createListing","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"_reserve"},{"type":"uint256","name":"_startPrice"},{"type":"uint256","name":"_durationDays"},{"type":"uint256","name":"_tokenId"},{"type":"address","name":"_nft"}],"outputs":[]},{"type":"function","name":"bid","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"_listingId"},{"type":"uint256","name":"_amount"}],"outputs":[]}]`

var marketplaceStringStateABI = `[{"type":"function","name":"listingCount","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"listings","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"_listingId"}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"seller"},{"type":"address","name":"nft"},{"type":"uint256","name":"tokenId"},{"type":"string","name":"auctionState"},{"type":"uint256","name":"currentPrice"},{"type":"uint256","name":"closingTime"}]},{"type":"function","name":"createListing","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"_reserve"},{"type":"uint256","name":"_startPrice"},{"type":"uint256","name":"_durationDays"},{"type":"uint256","name":"_tokenId"},{"type":"address","name":"_nft"}],"outputs":[]},{"type":"function","name":"bid","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"_listingId"},{"type":"uint256","name":"_amount"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi

	_abi, err = abi.JSON(strings.NewReader(marketplaceStringStateABI))
	if err != nil {
		panic("Failed to parse marketplace string-state abi")
	}
	MarketplaceStringStateABI = _abi
}
