// Package main adspot API.
//
// @title           Ad-Spot Marketplace API
// @version         1.0
// @description     rental scheduling, fixed-price sales, auctions and pull-payment balances over registry-owned assets.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"adspot/app/echoServer"
	adminctrl "adspot/app/echoServer/controller/admin"
	auctionctrl "adspot/app/echoServer/controller/auction"
	marketctrl "adspot/app/echoServer/controller/market"
	registryctrl "adspot/app/echoServer/controller/registry"
	rentalctrl "adspot/app/echoServer/controller/rental"
	walletctrl "adspot/app/echoServer/controller/wallet"
	"adspot/app/echoServer/validation"
	"adspot/config"
	eventrepo "adspot/repository/event"
	payoutrepo "adspot/repository/payout"
	registryrepo "adspot/repository/registry"
	auctionsvc "adspot/service/auction"
	marketsvc "adspot/service/market"
	rentalsvc "adspot/service/rental"
	walletsvc "adspot/service/wallet"
	"adspot/store"
	"adspot/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// indexer feed (optional: no DATABASE_URL means in-memory log only)
	var ev eventrepo.Repo = eventrepo.Nop{}
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		ev = eventrepo.New(db.Pool)
	} else {
		log.Warn("DATABASE_URL not set, event log will not be persisted")
	}

	// state + external collaborators
	st := store.New(cfg.FeeReceiver, cfg.FeeBps)
	reg := registryrepo.NewHTTP(cfg.RegistryURL, cfg.RegistryAPIKey)
	pay := payoutrepo.NewHTTP(cfg.PayoutURL, cfg.PayoutAPIKey)

	// services
	rs := rentalsvc.New(st, reg, ev, cfg.AdminAccount)
	ms := marketsvc.New(st, reg, ev, cfg.OperatorAccount)
	as := auctionsvc.New(st, reg, ev, cfg.OperatorAccount)
	ws := walletsvc.New(st, pay, ev, cfg.AdminAccount)

	// controllers
	v := validator.New()
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	marketC := &marketctrl.Controller{Svc: ms, V: v, Log: log}
	auctionC := &auctionctrl.Controller{Svc: as, V: v, Log: log}
	walletC := &walletctrl.Controller{Svc: ws, Log: log}
	adminC := &adminctrl.Controller{Svc: ws, V: v, Log: log}
	registryC := &registryctrl.Controller{Svc: rs, Token: cfg.RegistryAPIKey, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Rental:   rentalC,
		Market:   marketC,
		Auction:  auctionC,
		Wallet:   walletC,
		Admin:    adminC,
		Registry: registryC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "fee_bps", cfg.FeeBps)

	e.Logger.Fatal(e.Start(":" + port))
}
