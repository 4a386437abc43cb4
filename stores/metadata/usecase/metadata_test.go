package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/domain/mocks"
)

func newTestMetadataUseCase(nftContract domain.NftContractRepo, webResource domain.WebResourceUseCase) domain.MetadataUseCase {
	return NewMetadataUseCase(&MetadataUseCaseCfg{
		NftContract:  nftContract,
		WebResource:  webResource,
		ImageGateway: "https://ipfs.io/ipfs",
		CacheTtl:     time.Minute,
	})
}

func Test_metadataUseCase_Resolve(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	nftContract := &mocks.NftContractRepo{}
	webResource := &mocks.WebResourceUseCase{}
	u := newTestMetadataUseCase(nftContract, webResource)

	nft := domain.Address("0xaa00000000000000000000000000000000000001")
	tokenId := domain.TokenId("7")

	nftContract.On("TokenURI", mock.Anything, nft, tokenId).Return("ipfs://QmMeta/7", nil)
	webResource.On("GetJson", mock.Anything, "ipfs://QmMeta/7").
		Return([]byte(`{"name":"Punk #7","description":"pixel face","image":"ipfs://QmImg/7.png"}`), nil)

	metadata, err := u.Resolve(ctx, nft, tokenId)
	req.NoError(err)
	req.Equal("Punk #7", metadata.Name)
	req.Equal("pixel face", metadata.Description)
	req.Equal("https://ipfs.io/ipfs/QmImg/7.png", metadata.Image)
}

func Test_metadataUseCase_Resolve_cached(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	nftContract := &mocks.NftContractRepo{}
	webResource := &mocks.WebResourceUseCase{}
	u := newTestMetadataUseCase(nftContract, webResource)

	nft := domain.Address("0xaa00000000000000000000000000000000000002")
	tokenId := domain.TokenId("1")

	nftContract.On("TokenURI", mock.Anything, nft, tokenId).Return("https://example.com/1.json", nil).Once()
	webResource.On("GetJson", mock.Anything, "https://example.com/1.json").
		Return([]byte(`{"name":"one","image":"https://example.com/1.png"}`), nil).Once()

	first, err := u.Resolve(ctx, nft, tokenId)
	req.NoError(err)

	// second hit comes from the cache, neither dependency is touched again
	second, err := u.Resolve(ctx, nft, tokenId)
	req.NoError(err)
	req.Equal(first, second)
	nftContract.AssertNumberOfCalls(t, "TokenURI", 1)
	webResource.AssertNumberOfCalls(t, "GetJson", 1)
}

func Test_metadataUseCase_Resolve_failures(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	// tokenURI failure
	nftContract := &mocks.NftContractRepo{}
	webResource := &mocks.WebResourceUseCase{}
	u := newTestMetadataUseCase(nftContract, webResource)

	nft := domain.Address("0xaa00000000000000000000000000000000000003")
	nftContract.On("TokenURI", mock.Anything, nft, domain.TokenId("1")).Return("", errors.New("revert"))
	_, err := u.Resolve(ctx, nft, domain.TokenId("1"))
	req.True(errors.Is(err, domain.ErrMetadataUnavailable))

	// malformed document
	nftContract.On("TokenURI", mock.Anything, nft, domain.TokenId("2")).Return("https://example.com/2.json", nil)
	webResource.On("GetJson", mock.Anything, "https://example.com/2.json").
		Return(nil, domain.ErrInvalidJsonFormat)
	_, err = u.Resolve(ctx, nft, domain.TokenId("2"))
	req.True(errors.Is(err, domain.ErrMetadataUnavailable))

	// unreachable resource
	nftContract.On("TokenURI", mock.Anything, nft, domain.TokenId("3")).Return("https://example.com/3.json", nil)
	webResource.On("GetJson", mock.Anything, "https://example.com/3.json").
		Return(nil, errors.New("504"))
	_, err = u.Resolve(ctx, nft, domain.TokenId("3"))
	req.True(errors.Is(err, domain.ErrMetadataUnavailable))
}

func Test_metadataUseCase_rewriteImageUrl(t *testing.T) {
	u := &metadataUseCase{imageGateway: "https://ipfs.io/ipfs"}

	tests := []struct {
		name  string
		image string
		want  string
	}{
		{
			name:  "ipfs locator",
			image: "ipfs://QmImg/0.png",
			want:  "https://ipfs.io/ipfs/QmImg/0.png",
		},
		{
			name:  "plain https untouched",
			image: "https://example.com/0.png",
			want:  "https://example.com/0.png",
		},
		{
			name:  "empty untouched",
			image: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.rewriteImageUrl(tt.image); got != tt.want {
				t.Errorf("rewriteImageUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}
