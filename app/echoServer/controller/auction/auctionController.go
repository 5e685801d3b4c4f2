package auction

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"adspot/app/echoServer/jwtx"
	as "adspot/service/auction"
	"adspot/service/fault"
)

type Controller struct {
	Svc as.Service
	V   *validator.Validate
	Log *slog.Logger
}

func assetID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("assetId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// POST /v1/auctions/:assetId
func (h *Controller) Create(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	caller, err := jwtx.AccountFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if err := h.Svc.Create(c.Request().Context(), caller, id, req.Start, req.End, req.MinBid); err != nil {
		h.Log.Error("auction create", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid auction window or min bid"})
		case fault.ErrAuctionActive:
			return c.JSON(http.StatusConflict, echo.Map{"message": "unsettled auction exists"})
		case fault.ErrNotSeller:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "caller is not the asset owner"})
		case fault.ErrNotApproved:
			return c.JSON(http.StatusConflict, echo.Map{"message": "marketplace not approved as operator"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"asset_id": id})
}

// POST /v1/auctions/:assetId/bids
func (h *Controller) Bid(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req BidReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	caller, err := jwtx.AccountFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if err := h.Svc.Bid(c.Request().Context(), caller, id, req.Amount); err != nil {
		h.Log.Error("bid", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrAuctionInactive:
			return c.JSON(http.StatusConflict, echo.Map{"message": "auction not active"})
		case fault.ErrAuctionEnded:
			return c.JSON(http.StatusConflict, echo.Map{"message": "auction ended"})
		case fault.ErrBidTooLow:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bid below required minimum"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"asset_id": id, "amount": req.Amount})
}

// POST /v1/auctions/:assetId/settle
func (h *Controller) Settle(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}

	if err := h.Svc.Settle(c.Request().Context(), id); err != nil {
		h.Log.Error("settle", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrAuctionInactive:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no unsettled auction"})
		case fault.ErrAuctionNotEnded:
			return c.JSON(http.StatusConflict, echo.Map{"message": "auction not ended"})
		case fault.ErrTransferFailed:
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "asset transfer failed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "settled"})
}

// GET /v1/auctions/:assetId
func (h *Controller) Get(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	v, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if fault.Code(err) == fault.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no auction"})
		}
		h.Log.Error("auction detail", "asset_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, v)
}
