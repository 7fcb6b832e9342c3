package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpos/posledger/internal/ledger"
	"github.com/openpos/posledger/internal/webserver"
)

type stockAdjustPayload struct {
	Quantity looseInt `json:"quantity"`
	Action   string   `json:"action" validate:"required,oneof=add deduct"`
}

// registerInventoryRoutes registers stock adjustment endpoints
func registerInventoryRoutes() {
	webserver.ApiPUT("/inventory/:id", adjustStock)
}

func adjustStock(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product ID", nil)
	}

	var payload stockAdjustPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse adjustment parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	p, err := GetLedger(c).Inventory.Adjust(c.Request().Context(), id,
		payload.Quantity.value, ledger.AdjustMode(payload.Action))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, p)
}
