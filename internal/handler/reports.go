package handler

import (
	"net/http"
	"time"

	"comercio/internal/apierror"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// DailySales GET /v1/reports/daily_sales?from=YYYY-MM-DD&to=YYYY-MM-DD
// Both parameters are mandatory calendar dates; validation lives here, not
// in the report engine.
func (h *ReportsHandler) DailySales(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest,
			apierror.New("Parameters 'from' and 'to' are required (YYYY-MM-DD format)"))
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid date format. Use YYYY-MM-DD"))
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid date format. Use YYYY-MM-DD"))
		return
	}

	rows, err := h.svc.DailySales(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
