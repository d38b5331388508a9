package handler

import (
	"errors"
	"net/http"
	"reflect"

	"comercio/internal/apierror"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// validateDecimalPlaces rejects amounts finer than the numeric(12,2)
// columns can hold; without this check the store would silently round.
// Returns false and writes the 400 response when any field fails.
func validateDecimalPlaces(c *gin.Context, fields map[string]decimal.Decimal) bool {
	bad := make(map[string]string)
	for name, d := range fields {
		if d.Exponent() < -2 {
			bad[name] = "Ensure that there are no more than 2 decimal places."
		}
	}
	if len(bad) > 0 {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(bad))
		return false
	}
	return true
}

// parseID parses the :id path parameter. Returns uuid.Nil and writes the
// 400 response when the value is not a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps a service-layer error to the HTTP contract:
// NotFound → 404, business-rule violations and constraint conflicts → 400
// with their exact message, anything else → 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, apierror.New("Ya existe un registro con ese folio."))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, apierror.New("No se puede completar: existen registros asociados."))
	case service.IsBusiness(err):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		// ErrorHandler middleware logs it and writes the 500 envelope.
		_ = c.Error(err)
	}
}
