package wallet

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"adspot/app/echoServer/jwtx"
	"adspot/service/fault"
	ws "adspot/service/wallet"
)

type Controller struct {
	Svc ws.Service
	Log *slog.Logger
}

// GET /v1/wallet/balance
func (h *Controller) Balance(c echo.Context) error {
	account, err := jwtx.AccountFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	bal, err := h.Svc.Balance(c.Request().Context(), account)
	if err != nil {
		h.Log.Error("balance", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"account": account, "balance": bal})
}

// GET /v1/wallet/ledger
func (h *Controller) Ledger(c echo.Context) error {
	account, err := jwtx.AccountFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.Ledger(c.Request().Context(), account)
	if err != nil {
		h.Log.Error("ledger", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/wallet/claims
func (h *Controller) Claim(c echo.Context) error {
	account, err := jwtx.AccountFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	amount, err := h.Svc.Claim(c.Request().Context(), account)
	if err != nil {
		h.Log.Error("claim", "account", account, "err", err)
		switch fault.Code(err) {
		case fault.ErrNothingToClaim:
			return c.JSON(http.StatusConflict, echo.Map{"message": "nothing to claim"})
		case fault.ErrTransferFailed:
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "payout delivery failed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"account": account, "claimed": amount})
}

// GET /v1/events?asset_id=N
func (h *Controller) Events(c echo.Context) error {
	var assetID int64
	if raw := c.QueryParam("asset_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset_id"})
		}
		assetID = id
	}
	rows, err := h.Svc.AssetEvents(c.Request().Context(), assetID)
	if err != nil {
		h.Log.Error("events", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
