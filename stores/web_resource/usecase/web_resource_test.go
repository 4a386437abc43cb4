package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/domain/mocks"
)

func Test_getIpfsUrl(t *testing.T) {
	type args struct {
		url string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "pinata",
			args: args{
				url: "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			},
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			args: args{
				url: "https://womenandweapons.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			},
			want: "ipfs://QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			args: args{
				url: "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			},
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "cloudflare",
			args: args{
				url: "https://cloudflare-ipfs.com/ipfs/QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
			},
			want: "ipfs://QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
		},
		{
			name: "noop",
			args: args{
				url: "https://some.url",
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.args.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_webResourceUseCase_Get(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	httpReader := &mocks.WebResourceReaderRepository{}
	ipfsReader := &mocks.WebResourceReaderRepository{}
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader: httpReader,
		IpfsReader: ipfsReader,
	})

	httpReader.On("Get", mock.Anything, "https://example.com/meta.json").Return([]byte(`{}`), nil)
	data, err := u.Get(ctx, "https://example.com/meta.json")
	req.NoError(err)
	req.Equal([]byte(`{}`), data)

	// ipfs:// locators route to the ipfs reader with the prefix stripped
	ipfsReader.On("Get", mock.Anything, "QmHash/0").Return([]byte(`{"a":1}`), nil)
	data, err = u.Get(ctx, "ipfs://QmHash/0")
	req.NoError(err)
	req.Equal([]byte(`{"a":1}`), data)

	_, err = u.Get(ctx, "ftp://example.com/meta.json")
	req.Equal(domain.ErrUnsupportedSchema, err)
}

func Test_webResourceUseCase_GetJson(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	httpReader := &mocks.WebResourceReaderRepository{}
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader: httpReader,
		IpfsReader: &mocks.WebResourceReaderRepository{},
	})

	httpReader.On("Get", mock.Anything, "https://example.com/ok.json").Return([]byte(`{"name":"x"}`), nil)
	data, err := u.GetJson(ctx, "https://example.com/ok.json")
	req.NoError(err)
	req.Equal([]byte(`{"name":"x"}`), data)

	httpReader.On("Get", mock.Anything, "https://example.com/broken.json").Return([]byte(`<html>`), nil)
	_, err = u.GetJson(ctx, "https://example.com/broken.json")
	req.Equal(domain.ErrInvalidJsonFormat, err)
}

func Test_webResourceUseCase_IpfsFallback(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	httpReader := &mocks.WebResourceReaderRepository{}
	ipfsReader := &mocks.WebResourceReaderRepository{}
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader: httpReader,
		IpfsReader: ipfsReader,
	})

	httpReader.On("Get", mock.Anything, "https://ipfs.io/ipfs/QmHash").Return(nil, errors.New("504"))
	ipfsReader.On("Get", mock.Anything, "QmHash").Return([]byte(`{}`), nil)

	data, err := u.Get(ctx, "https://ipfs.io/ipfs/QmHash")
	req.NoError(err)
	req.Equal([]byte(`{}`), data)
}
