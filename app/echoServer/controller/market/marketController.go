package market

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"adspot/app/echoServer/jwtx"
	"adspot/service/fault"
	ms "adspot/service/market"
)

type Controller struct {
	Svc ms.Service
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

// POST /v1/listings/:assetId
func (h *Controller) List(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req ListReq
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

	if err := h.Svc.List(c.Request().Context(), caller, id, req.Price); err != nil {
		h.Log.Error("list", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrNotSeller:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "caller is not the asset owner"})
		case fault.ErrNotApproved:
			return c.JSON(http.StatusConflict, echo.Map{"message": "marketplace not approved as operator"})
		case fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"asset_id": id, "price": req.Price})
}

// DELETE /v1/listings/:assetId
func (h *Controller) Unlist(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	caller, err := jwtx.AccountFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if err := h.Svc.Unlist(c.Request().Context(), caller, id); err != nil {
		h.Log.Error("unlist", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not listed"})
		case fault.ErrNotSeller:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "unlisted"})
}

// POST /v1/listings/:assetId/buy
func (h *Controller) Buy(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req BuyReq
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

	if err := h.Svc.Buy(c.Request().Context(), caller, id, req.Payment); err != nil {
		h.Log.Error("buy", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no active sale or payment below price"})
		case fault.ErrTransferFailed:
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "asset transfer failed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bought", "asset_id": id})
}

// GET /v1/listings/:assetId
func (h *Controller) Get(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	l, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if fault.Code(err) == fault.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not listed"})
		}
		h.Log.Error("listing detail", "asset_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, l)
}
