package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/log"
	"github.com/debay/auctionclient/base/pricenorm"
	bValidator "github.com/debay/auctionclient/base/validator"
	"github.com/debay/auctionclient/domain"
	mmiddleware "github.com/debay/auctionclient/middleware"
	"github.com/debay/auctionclient/service/abiscan"
	"github.com/debay/auctionclient/service/chain"
	"github.com/debay/auctionclient/service/wallet"
	bid_usecase "github.com/debay/auctionclient/stores/bid/usecase"
	listing_delivery "github.com/debay/auctionclient/stores/listing/delivery/http"
	listing_repository "github.com/debay/auctionclient/stores/listing/repository"
	listing_usecase "github.com/debay/auctionclient/stores/listing/usecase"
	metadata_repository "github.com/debay/auctionclient/stores/metadata/repository"
	metadata_usecase "github.com/debay/auctionclient/stores/metadata/usecase"
	paytoken_repository "github.com/debay/auctionclient/stores/paytoken/repository"
	session_delivery "github.com/debay/auctionclient/stores/session/delivery/http"
	session_usecase "github.com/debay/auctionclient/stores/session/usecase"
	web_resource_repository "github.com/debay/auctionclient/stores/web_resource/repository"
	web_resource_usecase "github.com/debay/auctionclient/stores/web_resource/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		MaxInflight: viper.GetInt("chain.maxInflight"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	chainId := domain.ChainId(viper.GetInt32("chain.defaultChainId"))

	httpTimeout := viper.GetDuration("http.timeout")
	abiscanClient := abiscan.NewClient(&abiscan.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("abiscan.baseUrl"),
		Apikey:     viper.GetString("abiscan.apikey"),
		Timeout:    httpTimeout,
	})

	// ipfs reads go through a local node when one is configured
	var ipfsReader domain.WebResourceReaderRepository
	if nodeApi := viper.GetString("ipfs.nodeApi"); len(nodeApi) > 0 {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gateway"), httpTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader: web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout),
		IpfsReader: ipfsReader,
	})

	// construct repository, usecase and delivery
	stateMapping := domain.NumericStateMapping()
	if domain.StateEncoding(viper.GetString("marketplace.stateEncoding")) == domain.StateEncodingString {
		stateMapping = domain.StringStateMapping()
	}
	marketplaceRepo := listing_repository.NewMarketplaceRepo(&listing_repository.MarketplaceRepoCfg{
		ChainId: chainId,
		Address: domain.Address(viper.GetString("marketplace.address")).ToLower(),
		Chain:   chainService,
		States:  stateMapping,
	})
	payTokenRepo := paytoken_repository.NewPayTokenRepo(&paytoken_repository.PayTokenRepoCfg{
		ChainId: chainId,
		Address: domain.Address(viper.GetString("payToken.address")).ToLower(),
		Chain:   chainService,
	})
	nftApproverRepo := paytoken_repository.NewNftApproverRepo(chainId, chainService)
	nftContractRepo := metadata_repository.NewNftContractRepo(&metadata_repository.NftContractRepoCfg{
		ChainId: chainId,
		Chain:   chainService,
		Abiscan: abiscanClient,
	})

	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		NftContract:  nftContractRepo,
		WebResource:  webResource,
		ImageGateway: viper.GetString("ipfs.gateway"),
		CacheTtl:     viper.GetDuration("metadata.cacheTtl"),
	})

	normalizer, err := pricenorm.New(pricenorm.Convention(viper.GetString("marketplace.priceConvention")))
	if err != nil {
		panic(err)
	}

	listings := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Marketplace: marketplaceRepo,
		Metadata:    metadata,
		Price:       normalizer,
	})
	bids := bid_usecase.NewBidUseCase(&bid_usecase.BidUseCaseCfg{
		Marketplace: marketplaceRepo,
		PayToken:    payTokenRepo,
		NftApprover: nftApproverRepo,
		Listings:    listings,
	})

	walletProvider := wallet.NewKeystoreProvider(&wallet.ProviderCfg{
		KeystoreDir: viper.GetString("wallet.keystoreDir"),
		Passphrase:  viper.GetString("wallet.passphrase"),
	})
	sessions := session_usecase.NewSessionUseCase(&session_usecase.SessionUseCaseCfg{
		Wallet:  walletProvider,
		ChainId: chainId,
	})

	listing_delivery.New(e, listings, bids, sessions)
	session_delivery.New(e, sessions)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	sctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
