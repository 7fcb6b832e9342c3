package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpos/posledger/internal/ledger"
	"github.com/openpos/posledger/internal/webserver"
)

type productPayload struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Category    string     `json:"category" validate:"omitempty,max=100"`
	Price       looseFloat `json:"price"`
	Quantity    looseInt   `json:"quantity"`
}

type productUpdatePayload struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	Price       looseFloat `json:"price"`
	Quantity    looseInt   `json:"quantity"`
}

// registerProductRoutes registers product catalog CRUD endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	products, err := GetLedger(c).Catalog.List(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, products)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product ID", nil)
	}

	p, err := GetLedger(c).Catalog.Get(c.Request().Context(), id)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse product parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	p, err := GetLedger(c).Catalog.Create(c.Request().Context(), ledger.ProductInput{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
		Price:       payload.Price.value,
		Quantity:    payload.Quantity.value,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return created(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product ID", nil)
	}

	var payload productUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse product parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	up := ledger.ProductUpdate{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
	}
	if payload.Price.set {
		up.Price = &payload.Price.value
	}
	if payload.Quantity.set {
		up.Quantity = &payload.Quantity.value
	}

	p, err := GetLedger(c).Catalog.Update(c.Request().Context(), id, up)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product ID", nil)
	}

	if err := GetLedger(c).Catalog.Delete(c.Request().Context(), id); err != nil {
		return failFromError(c, err)
	}
	return ok(c, map[string]interface{}{"id": id})
}
