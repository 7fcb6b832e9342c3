package adminapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/openpos/posledger/internal/app"
	"github.com/openpos/posledger/internal/ledger"
	"github.com/openpos/posledger/internal/webserver"
)

// GetAppContext retrieves the application context injected by the web
// server middleware.
func GetAppContext(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

func GetDB(c echo.Context) *gorm.DB {
	return GetAppContext(c).DB()
}

func GetLedger(c echo.Context) *ledger.Ledger {
	return GetAppContext(c).Ledger()
}

type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func ok(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusOK, v)
}

func created(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusCreated, v)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"error": errorBody{Code: code, Message: message, Details: details},
	})
}

// failFromError maps service errors onto HTTP responses. Unrecognized
// errors are reported as database failures without leaking internals.
func failFromError(c echo.Context, err error) error {
	var invalid *ledger.InvalidInputError
	if errors.As(err, &invalid) {
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", invalid.Error(), map[string]interface{}{"field": invalid.Field})
	}

	var short *ledger.InsufficientStockError
	if errors.As(err, &short) {
		return fail(c, http.StatusConflict, "INSUFFICIENT_STOCK", short.Error(), map[string]interface{}{
			"productId": strconv.FormatInt(short.ProductID, 10),
			"requested": short.Requested,
			"available": short.Available,
		})
	}

	var conflict *ledger.ConflictError
	if errors.As(err, &conflict) {
		return fail(c, http.StatusConflict, "CONFLICT", conflict.Error(), nil)
	}

	switch {
	case errors.Is(err, ledger.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case errors.Is(err, ledger.ErrCustomerNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	case errors.Is(err, ledger.ErrSaleNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Sale not found", nil)
	}

	return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Operation failed", err.Error())
}

func handleValidationError(c echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Validation failed", map[string]interface{}{"fields": fields})
	}
	return fail(c, http.StatusBadRequest, "INVALID_INPUT", "Validation failed", nil)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
}

// looseInt decodes a JSON number or a numeric string. HTML form inputs
// submit quantities as strings and the API accepts both shapes.
type looseInt struct {
	value int
	set   bool
}

func (l *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	l.value = n
	l.set = true
	return nil
}

// looseFloat is the float companion of looseInt.
type looseFloat struct {
	value float64
	set   bool
}

func (l *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	l.value = f
	l.set = true
	return nil
}

// looseID decodes an id that may arrive as a JSON number or string.
// Snowflake ids exceed the double precision range, so clients send them
// as strings; older clients sent small numeric ids.
type looseID struct {
	value int64
	set   bool
}

func (l *looseID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	l.value = n
	l.set = true
	return nil
}
