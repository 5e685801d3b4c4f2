package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"adspot/app/echoServer/jwtx"
	"adspot/service/fault"
	rs "adspot/service/rental"
)

type Controller struct {
	Svc rs.Service
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

// POST /v1/rentals/:assetId/rent
func (h *Controller) Rent(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req RentReq
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

	out, err := h.Svc.Rent(c.Request().Context(), caller, id, req.DurationSec, req.Paid)
	if err != nil {
		h.Log.Error("rent", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrInvalidDuration, fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, out)
}

// PUT /v1/rentals/:assetId/price
func (h *Controller) SetPrice(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req SetPriceReq
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

	if err := h.Svc.SetPrice(c.Request().Context(), caller, id, req.PricePerSec); err != nil {
		h.Log.Error("set price", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrNotAuthorized:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}

// GET /v1/rentals/:assetId
func (h *Controller) Current(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	rec, active, err := h.Svc.Current(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("current renter", "asset_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if !active {
		return c.JSON(http.StatusOK, echo.Map{"asset_id": id, "renter": nil})
	}
	return c.JSON(http.StatusOK, rec)
}

// POST /v1/rentals/:assetId/pay
func (h *Controller) Pay(c echo.Context) error {
	id, ok := assetID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid asset id"})
	}
	var req PayRentReq
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

	if err := h.Svc.PayRent(c.Request().Context(), caller, id, req.Payment); err != nil {
		h.Log.Error("pay rent", "asset_id", id, "err", err)
		switch fault.Code(err) {
		case fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "forwarded"})
}
