package abiscan

import (
	"errors"
	"net/http"
	"time"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrAbiNotVerified  = errors.New("contract abi not verified")
)

// Client looks up a contract's interface description from an etherscan-style
// explorer api, keyed by contract address.
type Client interface {
	GetAbi(bCtx.Ctx, domain.Address) (ethabi.ABI, error)
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Apikey     string
	Timeout    time.Duration
}

// envelope is the explorer's response wrapper; Result holds the abi document
// as an escaped json string.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}
