package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/log"
	bValidator "github.com/zenith-market/goapi/base/validator"
	"github.com/zenith-market/goapi/domain"
	mmiddleware "github.com/zenith-market/goapi/middleware"
	"github.com/zenith-market/goapi/service/chain"
	"github.com/zenith-market/goapi/service/chain/contract"
	"github.com/zenith-market/goapi/service/pinata"
	"github.com/zenith-market/goapi/service/wallet"
	auth_delivery "github.com/zenith-market/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/zenith-market/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/zenith-market/goapi/stores/auth/usecase"
	hc_delivery "github.com/zenith-market/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/zenith-market/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/zenith-market/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/zenith-market/goapi/stores/listing/delivery/http"
	listing_repository "github.com/zenith-market/goapi/stores/listing/repository"
	listing_usecase "github.com/zenith-market/goapi/stores/listing/usecase"
	media_delivery "github.com/zenith-market/goapi/stores/media/delivery/http"
	media_usecase "github.com/zenith-market/goapi/stores/media/usecase"
	metadata_delivery "github.com/zenith-market/goapi/stores/metadata/delivery/http"
	metadata_usecase "github.com/zenith-market/goapi/stores/metadata/usecase"
	trade_delivery "github.com/zenith-market/goapi/stores/trade/delivery/http"
	trade_usecase "github.com/zenith-market/goapi/stores/trade/usecase"
	web_resource_repository "github.com/zenith-market/goapi/stores/web_resource/repository"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	if err := viper.ReadInConfig(); err != nil {
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
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	context.Info("init chain service")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:                viper.GetString("network.rpcUrl"),
		MaxConcurrentRequests: viper.GetInt("network.maxConcurrentRequests"),
		ReceiptPollInterval:   viper.GetDuration("network.receiptPollInterval"),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init chain service")
	}

	marketplaceAddress := domain.Address(viper.GetString("contracts.marketplace")).ToLower()
	nftAddress := domain.Address(viper.GetString("contracts.token")).ToLower()
	marketplace := contract.NewMarketplace(chainService, marketplaceAddress)
	nft := contract.NewNft(chainService, nftAddress)

	// init content services
	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.nodeUrl"))
	pinataService := pinata.New(viper.GetString("pinata.apiKey"), viper.GetString("pinata.apiSecret"))

	httpTimeout := viper.GetDuration("http.timeout")
	httpReader := web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout)
	var ipfsReader domain.WebResourceReaderRepository
	if gatewayUrl := viper.GetString("ipfs.gatewayUrl"); gatewayUrl != "" {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, gatewayUrl, httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsShell, httpTimeout)
	}
	cachedIpfsReader := web_resource_repository.NewCachedReaderRepo(
		ipfsReader,
		viper.GetInt("metadataCache.sizeBytes"),
		viper.GetInt("metadataCache.expireSecs"),
	)
	dataUriReader := web_resource_repository.NewDataUriReaderRepo()

	var metadataWriter domain.WebResourceWriterRepository
	if viper.GetString("pinata.apiKey") != "" {
		metadataWriter = web_resource_repository.NewPinataWriterRepo(pinataService)
	} else {
		metadataWriter = web_resource_repository.NewIpfsNodeApiWriterRepo(ipfsShell)
	}

	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader:    httpReader,
		IpfsReader:    cachedIpfsReader,
		DataUriReader: dataUriReader,
		Writer:        metadataWriter,
	})

	decimals := viper.GetInt32("currency.decimals")

	listingRepo := listing_repository.NewMarketplaceRepo(marketplace)
	listing := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Repo:                listingRepo,
		Nft:                 nft,
		Metadata:            metadata,
		Decimals:            decimals,
		MetadataConcurrency: viper.GetInt("metadataConcurrency"),
	})

	walletService := wallet.New(&wallet.WalletCfg{
		KeystoreDir: viper.GetString("keystore.dir"),
		Passphrase:  viper.GetString("keystore.passphrase"),
		ChainId:     chainService.ChainId(),
	})

	trade := trade_usecase.NewTradeUseCase(&trade_usecase.TradeUseCaseCfg{
		Wallet:             walletService,
		Marketplace:        marketplace,
		Nft:                nft,
		Chain:              chainService,
		NftContractAddress: nftAddress,
		Decimals:           decimals,
	})

	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signatureMsg"),
		TokenDuration:      24 * time.Hour,
	})
	authMiddleware := auth_middleware.New(auth)

	media := media_usecase.New(pinataService)

	hc := hc_usecase.New(hc_repo.New(chainService))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	listing_delivery.New(e, listing)
	trade_delivery.New(e, trade, marketplace, authMiddleware.Auth())
	media_delivery.New(e, media, authMiddleware.Auth())
	metadata_delivery.New(e, metadata, authMiddleware.Auth())

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
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
