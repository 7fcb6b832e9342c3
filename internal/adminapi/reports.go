package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openpos/posledger/internal/webserver"
)

// registerReportRoutes registers the derived report views
func registerReportRoutes() {
	webserver.ApiGET("/reports/summary", getSummaryReport)
	webserver.ApiGET("/reports/sales-by-product", getSalesByProduct)
	webserver.ApiGET("/reports/stock", getStockDistribution)
	webserver.ApiGET("/reports/low-stock", getLowStock)
}

func getSummaryReport(c echo.Context) error {
	totals, err := GetLedger(c).Reports.Totals(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, totals)
}

func getSalesByProduct(c echo.Context) error {
	rows, err := GetLedger(c).Reports.SalesByProduct(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, rows)
}

func getStockDistribution(c echo.Context) error {
	rows, err := GetLedger(c).Reports.StockDistribution(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, rows)
}

// getLowStock lists products under the configured threshold. An optional
// threshold query parameter overrides it for the request.
func getLowStock(c echo.Context) error {
	threshold := 0
	if raw := strings.TrimSpace(c.QueryParam("threshold")); raw != "" {
		t, err := strconv.Atoi(raw)
		if err != nil || t <= 0 {
			return fail(c, http.StatusBadRequest, "INVALID_INPUT", "threshold must be a positive integer", nil)
		}
		threshold = t
	}

	rows, err := GetLedger(c).Reports.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, rows)
}
