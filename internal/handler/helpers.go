package handler

import (
	"net/http"
	"reflect"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/apierror"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseRange binds the shared from/to query into a report.Range. Returns
// false and writes a 400 if the dates are malformed or end precedes start.
func parseRange(c *gin.Context) (report.Range, bool) {
	var q dto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return report.Range{}, false
	}
	if q.From == "" {
		c.JSON(http.StatusBadRequest, apierror.New("query parameter 'from' is required (YYYY-MM-DD)"))
		return report.Range{}, false
	}
	from, err := time.Parse(report.DateLayout, q.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid 'from' date, expected YYYY-MM-DD"))
		return report.Range{}, false
	}
	var to time.Time
	if q.To != "" {
		if to, err = time.Parse(report.DateLayout, q.To); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid 'to' date, expected YYYY-MM-DD"))
			return report.Range{}, false
		}
	}
	rng, err := report.NewRange(from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return report.Range{}, false
	}
	return rng, true
}
