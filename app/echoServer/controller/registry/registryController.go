package registry

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	rs "adspot/service/rental"
)

// Controller receives ownership-transfer notifications from the asset
// registry. An expired rental on the transferred asset is cleared; an
// active one is untouched.
type Controller struct {
	Svc   rs.Service
	Token string
	Log   *slog.Logger
}

type transferEvent struct {
	AssetID int64  `json:"asset_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// POST /v1/registry/transfers
func (h *Controller) HandleTransfer(c echo.Context) error {
	if h.Token != "" && c.Request().Header.Get("X-Callback-Token") != h.Token {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	raw, _ := io.ReadAll(c.Request().Body)
	var ev transferEvent
	if err := json.Unmarshal(raw, &ev); err != nil || ev.AssetID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad webhook json"})
	}

	if err := h.Svc.OnTransfer(c.Request().Context(), ev.AssetID); err != nil {
		h.Log.Error("transfer webhook", "asset_id", ev.AssetID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}
