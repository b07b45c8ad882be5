package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftswap/app/bootstrap"
	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/goroutine"
	"github.com/x-xyz/nftswap/base/log"
	bValidator "github.com/x-xyz/nftswap/base/validator"
	mmiddleware "github.com/x-xyz/nftswap/middleware"
	activity_delivery "github.com/x-xyz/nftswap/stores/activity/delivery/http"
	hc_delivery "github.com/x-xyz/nftswap/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftswap/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftswap/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/nftswap/stores/listing/delivery/http"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/nftswap/app/api/docs"
)

//	@title			NFTSwap API
//	@version		1.0
//	@description	Listings of the NFTSwap marketplace contract.

// main
func main() {
	configPath := pflag.StringP("config", "c", bootstrap.DefaultConfigPath, "path of the yaml config")
	pflag.Parse()

	if err := bootstrap.LoadConfig(*configPath); err != nil {
		log.Log().WithField("err", err).Panic("bootstrap.LoadConfig failed")
	}

	context := ctx.Background()

	s, err := bootstrap.New(context)
	if err != nil {
		context.WithField("err", err).Panic("bootstrap.New failed")
	}

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	if s.Signer == nil {
		context.Warn("signer.privateKey not set, mutations are disabled")
	}

	hc := hc_usecase.New(hc_repo.New(s.Query, s.Client))
	hc_delivery.New(e, hc)
	listing_delivery.New(e, s.Reconcile, s.Mutation, s.Signer, s.Converter)
	if s.ActivityRepo != nil {
		activity_delivery.New(e, s.ActivityRepo)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	address := viper.GetString("server.address")
	panics := goroutine.RecoverableGo(func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}, goroutine.WithName("http-server"))

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case p, ok := <-panics:
		if ok {
			log.Log().WithField("panic", p.Panic).Error("server goroutine panicked")
		} else {
			log.Log().Info("server stopped")
		}
	}

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
