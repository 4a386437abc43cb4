package domain

import (
	bCtx "github.com/debay/auctionclient/base/ctx"
)

// TokenMetadata is the descriptive document behind a token's tokenURI, with
// any content-addressed locators already rewritten to gateway urls.
type TokenMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// MetadataUseCase resolves a token's off-chain metadata. Any failed step
// collapses into ErrMetadataUnavailable carrying the cause.
type MetadataUseCase interface {
	Resolve(c bCtx.Ctx, nft Address, tokenId TokenId) (*TokenMetadata, error)
}

// NftContractRepo talks to an arbitrary asset contract. TokenURI resolves the
// contract's interface through the ABI lookup service first, since asset
// contracts are third-party and their ABI is not known statically.
type NftContractRepo interface {
	TokenURI(c bCtx.Ctx, nft Address, tokenId TokenId) (string, error)
}
