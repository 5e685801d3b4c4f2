package echoServer

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"adspot/app/echoServer/controller/admin"
	"adspot/app/echoServer/controller/auction"
	"adspot/app/echoServer/controller/market"
	"adspot/app/echoServer/controller/registry"
	"adspot/app/echoServer/controller/rental"
	"adspot/app/echoServer/controller/wallet"
)

type C struct {
	Rental   *rental.Controller
	Market   *market.Controller
	Auction  *auction.Controller
	Wallet   *wallet.Controller
	Admin    *admin.Controller
	Registry *registry.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/registry/transfers", c.Registry.HandleTransfer)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),
	}))

	// Rental scheduler
	auth.POST("/rentals/:assetId/rent", c.Rental.Rent)
	auth.PUT("/rentals/:assetId/price", c.Rental.SetPrice)
	auth.GET("/rentals/:assetId", c.Rental.Current)
	auth.POST("/rentals/:assetId/pay", c.Rental.Pay)

	// Listing book
	auth.POST("/listings/:assetId", c.Market.List)
	auth.DELETE("/listings/:assetId", c.Market.Unlist)
	auth.POST("/listings/:assetId/buy", c.Market.Buy)
	auth.GET("/listings/:assetId", c.Market.Get)

	// Auction engine
	auth.POST("/auctions/:assetId", c.Auction.Create)
	auth.POST("/auctions/:assetId/bids", c.Auction.Bid)
	auth.POST("/auctions/:assetId/settle", c.Auction.Settle)
	auth.GET("/auctions/:assetId", c.Auction.Get)

	// Balance ledger
	auth.GET("/wallet/balance", c.Wallet.Balance)
	auth.GET("/wallet/ledger", c.Wallet.Ledger)
	auth.POST("/wallet/claims", c.Wallet.Claim)
	auth.GET("/events", c.Wallet.Events)

	// Admin
	auth.PUT("/admin/fee-policy", c.Admin.SetFeePolicy)
	auth.GET("/admin/fee-policy", c.Admin.GetFeePolicy)
}
