package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openpos/posledger/internal/webserver"
)

type thresholdPayload struct {
	Threshold looseInt `json:"threshold"`
}

// registerSettingRoutes registers runtime setting endpoints
func registerSettingRoutes() {
	webserver.ApiGET("/settings/low-stock-threshold", getLowStockThreshold)
	webserver.ApiPUT("/settings/low-stock-threshold", putLowStockThreshold)
}

func getLowStockThreshold(c echo.Context) error {
	return ok(c, map[string]interface{}{
		"threshold": GetLedger(c).Reports.Threshold(),
	})
}

func putLowStockThreshold(c echo.Context) error {
	var payload thresholdPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse setting parameters", nil)
	}
	if !payload.Threshold.set || payload.Threshold.value <= 0 {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "threshold must be a positive integer", nil)
	}

	err := GetAppContext(c).SaveSetting("ledger", "low_stock_threshold",
		strconv.Itoa(payload.Threshold.value))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, map[string]interface{}{"threshold": payload.Threshold.value})
}
