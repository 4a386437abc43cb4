package domain

import (
	bCtx "github.com/debay/auctionclient/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(bCtx.Ctx, string) ([]byte, error)
}

// WebResourceUseCase fetches a resource by url, routing ipfs:// locators to an
// ipfs reader and everything else over plain http.
type WebResourceUseCase interface {
	Get(c bCtx.Ctx, url string) ([]byte, error)
	// GetJson rejects payloads that are not valid json with ErrInvalidJsonFormat.
	GetJson(c bCtx.Ctx, url string) ([]byte, error)
}
