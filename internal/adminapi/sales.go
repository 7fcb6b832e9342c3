package adminapi

import (
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/openpos/posledger/internal/ledger"
	"github.com/openpos/posledger/internal/webserver"
)

type salePayload struct {
	ProductID  looseID  `json:"productId"`
	CustomerID looseID  `json:"customerId"`
	Quantity   looseInt `json:"quantity"`
}

// registerSaleRoutes registers sale recording and export endpoints
func registerSaleRoutes() {
	webserver.ApiGET("/sales", listSales)
	webserver.ApiGET("/sales/export", exportSales)
	webserver.ApiGET("/sales/:id", getSale)
	webserver.ApiPOST("/sales", createSale)
}

// listSales returns sales with product and customer names resolved, the
// shape the ledger views render directly.
func listSales(c echo.Context) error {
	records, err := GetLedger(c).Reports.SaleRecords(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, records)
}

func getSale(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid sale ID", nil)
	}

	sale, err := GetLedger(c).Sales.Get(c.Request().Context(), id)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, sale)
}

func createSale(c echo.Context) error {
	var payload salePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse sale parameters", nil)
	}
	if !payload.ProductID.set {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "productId is required", nil)
	}

	in := ledger.SaleInput{
		ProductID: payload.ProductID.value,
		Quantity:  payload.Quantity.value,
	}
	if payload.CustomerID.set {
		in.CustomerID = &payload.CustomerID.value
	}

	sale, err := GetLedger(c).Sales.Record(c.Request().Context(), in)
	if err != nil {
		return failFromError(c, err)
	}
	return created(c, sale)
}

type saleExportRow struct {
	ID       int64  `csv:"id"`
	Date     string `csv:"date"`
	Product  string `csv:"product"`
	Customer string `csv:"customer"`
	Quantity int    `csv:"quantity"`
}

func exportSales(c echo.Context) error {
	records, err := GetLedger(c).Reports.SaleRecords(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}

	rows := make([]saleExportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, saleExportRow{
			ID:       r.ID,
			Date:     r.Date,
			Product:  r.ProductName,
			Customer: r.Customer,
			Quantity: r.Quantity,
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(&rows, c.Response())
}
