package abiscan

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	bCtx "github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/domain"
	"github.com/debay/auctionclient/domain/keys"
	"github.com/debay/auctionclient/service/cache"
	"github.com/debay/auctionclient/service/cache/provider/primitive"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: cfg.BaseUrl,
		apikey:  cfg.Apikey,
		timeout: cfg.Timeout,
		cache: cache.New(cache.ServiceConfig{
			// verified abis don't change, long ttl just bounds memory
			Ttl:   24 * time.Hour,
			Pfx:   "abiscan_cache",
			Cache: primitive.NewPrimitive("abiscan_cache", 8),
		}),
	}
}

type client struct {
	client  http.Client
	baseUrl string
	apikey  string
	timeout time.Duration
	cache   cache.Service
}

func (c *client) GetAbi(ctx bCtx.Ctx, address domain.Address) (ethabi.ABI, error) {
	key := keys.CacheKey("abi", address.ToLowerStr())
	var raw string
	if err := c.cache.GetByFunc(ctx, key, &raw, func() (interface{}, error) {
		res, err := c.fetchAbi(ctx, address)
		if err != nil {
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return ethabi.ABI{}, err
	}
	return ethabi.JSON(strings.NewReader(raw))
}

func (c *client) fetchAbi(ctx bCtx.Ctx, address domain.Address) (string, error) {
	params := url.Values{
		"module":  {"contract"},
		"action":  {"getabi"},
		"address": {address.ToLowerStr()},
		"apikey":  {c.apikey},
	}
	url := fmt.Sprintf("%s/api?%s", c.baseUrl, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return "", err
	}
	resp := &envelope{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return "", err
	}
	if resp.Status != "1" {
		ctx.WithFields(log.Fields{
			"address": address,
			"message": resp.Message,
		}).Warn("abi not available")
		return "", ErrAbiNotVerified
	}
	return resp.Result, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}
