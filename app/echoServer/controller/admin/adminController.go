package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"adspot/app/echoServer/jwtx"
	"adspot/service/fault"
	ws "adspot/service/wallet"
)

type Controller struct {
	Svc ws.Service
	V   *validator.Validate
	Log *slog.Logger
}

// PUT /v1/admin/fee-policy
func (h *Controller) SetFeePolicy(c echo.Context) error {
	var req SetFeePolicyReq
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

	if err := h.Svc.SetFeePolicy(c.Request().Context(), caller, req.Receiver, req.Bps); err != nil {
		h.Log.Error("set fee policy", "err", err)
		switch fault.Code(err) {
		case fault.ErrNotAuthorized:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case fault.ErrInvalidParams:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bps above cap or empty receiver"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}

// GET /v1/admin/fee-policy
func (h *Controller) GetFeePolicy(c echo.Context) error {
	p, err := h.Svc.FeePolicy(c.Request().Context())
	if err != nil {
		h.Log.Error("get fee policy", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, p)
}
