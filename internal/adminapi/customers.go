package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpos/posledger/internal/ledger"
	"github.com/openpos/posledger/internal/webserver"
)

type customerPayload struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"omitempty,email,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

type customerUpdatePayload struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email,max=200"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
}

// registerCustomerRoutes registers customer directory CRUD endpoints
func registerCustomerRoutes() {
	webserver.ApiGET("/customers", listCustomers)
	webserver.ApiGET("/customers/:id", getCustomer)
	webserver.ApiPOST("/customers", createCustomer)
	webserver.ApiPUT("/customers/:id", updateCustomer)
	webserver.ApiDELETE("/customers/:id", deleteCustomer)
}

func listCustomers(c echo.Context) error {
	customers, err := GetLedger(c).Directory.List(c.Request().Context())
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, customers)
}

func getCustomer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid customer ID", nil)
	}

	cust, err := GetLedger(c).Directory.Get(c.Request().Context(), id)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, cust)
}

func createCustomer(c echo.Context) error {
	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse customer parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	cust, err := GetLedger(c).Directory.Create(c.Request().Context(), ledger.CustomerInput{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return created(c, cust)
}

func updateCustomer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid customer ID", nil)
	}

	var payload customerUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Unable to parse customer parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	cust, err := GetLedger(c).Directory.Update(c.Request().Context(), id, ledger.CustomerUpdate{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, cust)
}

func deleteCustomer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid customer ID", nil)
	}

	if err := GetLedger(c).Directory.Delete(c.Request().Context(), id); err != nil {
		return failFromError(c, err)
	}
	return ok(c, map[string]interface{}{"id": id})
}
