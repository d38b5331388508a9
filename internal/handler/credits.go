package handler

import (
	"net/http"

	"comercio/internal/dto"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreditsHandler struct{ svc service.CreditService }

func NewCreditsHandler(svc service.CreditService) *CreditsHandler {
	return &CreditsHandler{svc: svc}
}

// Create POST /v1/credits
func (h *CreditsHandler) Create(c *gin.Context) {
	var req dto.CreateCreditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !validateDecimalPlaces(c, map[string]decimal.Decimal{"amount": req.Amount}) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/credits
func (h *CreditsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/credits/:id
func (h *CreditsHandler) Get(c *gin.Context) {
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

// Update PUT /v1/credits/:id
func (h *CreditsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCreditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Amount != nil {
		if !validateDecimalPlaces(c, map[string]decimal.Decimal{"amount": *req.Amount}) {
			return
		}
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/credits/:id
func (h *CreditsHandler) Delete(c *gin.Context) {
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
