package handler

import (
	"net/http"

	"comercio/internal/dto"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Create POST /v1/sales
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !validateDecimalPlaces(c, map[string]decimal.Decimal{"subtotal": req.Subtotal, "tax": req.Tax}) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/sales
func (h *SalesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/sales/:id
func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/sales/:id
func (h *SalesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	amounts := make(map[string]decimal.Decimal)
	if req.Subtotal != nil {
		amounts["subtotal"] = *req.Subtotal
	}
	if req.Tax != nil {
		amounts["tax"] = *req.Tax
	}
	if !validateDecimalPlaces(c, amounts) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/sales/:id
func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
