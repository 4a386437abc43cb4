package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/domain/keys"
	"github.com/debay/auctionclient/service/cache"
	"github.com/debay/auctionclient/service/cache/provider/primitive"
)

const ipfsPrefix = "ipfs://"

type MetadataUseCaseCfg struct {
	NftContract domain.NftContractRepo
	WebResource domain.WebResourceUseCase
	// ImageGateway is the http gateway prefix substituted for ipfs:// image
	// locators, e.g. https://ipfs.io/ipfs.
	ImageGateway string
	CacheTtl     time.Duration
}

type metadataUseCase struct {
	nftContract  domain.NftContractRepo
	webResource  domain.WebResourceUseCase
	imageGateway string
	cache        cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	ttl := cfg.CacheTtl
	if ttl == 0 {
		ttl = time.Hour
	}
	return &metadataUseCase{
		nftContract:  cfg.NftContract,
		webResource:  cfg.WebResource,
		imageGateway: strings.TrimSuffix(cfg.ImageGateway, "/"),
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   "metadata_cache",
			Cache: primitive.NewPrimitive("metadata_cache", 16),
		}),
	}
}

func (u *metadataUseCase) Resolve(c bCtx.Ctx, nft domain.Address, tokenId domain.TokenId) (*domain.TokenMetadata, error) {
	key := keys.CacheKey(nft.ToLowerStr(), tokenId.String())
	metadata := &domain.TokenMetadata{}
	if err := u.cache.GetByFunc(c, key, metadata, func() (interface{}, error) {
		return u.resolve(c, nft, tokenId)
	}); err != nil {
		return nil, domain.WrapKind(domain.ErrMetadataUnavailable, err)
	}
	return metadata, nil
}

func (u *metadataUseCase) resolve(c bCtx.Ctx, nft domain.Address, tokenId domain.TokenId) (*domain.TokenMetadata, error) {
	uri, err := u.nftContract.TokenURI(c, nft, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":     nft,
			"tokenId": tokenId,
			"err":     err,
		}).Error("nftContract.TokenURI failed")
		return nil, err
	}

	data, err := u.webResource.GetJson(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Error("webResource.GetJson failed")
		return nil, err
	}

	metadata := &domain.TokenMetadata{}
	if err := json.Unmarshal(data, metadata); err != nil {
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, err
	}
	metadata.Image = u.rewriteImageUrl(metadata.Image)
	return metadata, nil
}

// rewriteImageUrl turns a content-addressed locator into a gateway url the
// display layer can load directly.
func (u *metadataUseCase) rewriteImageUrl(image string) string {
	if !strings.HasPrefix(image, ipfsPrefix) {
		return image
	}
	cid := strings.TrimPrefix(image, ipfsPrefix)
	return fmt.Sprintf("%s/%s", u.imageGateway, cid)
}
