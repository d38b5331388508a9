package handler

import (
	"net/http"

	"comercio/internal/dto"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// Create POST /v1/customers
func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/customers
func (h *CustomersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/customers/:id
func (h *CustomersHandler) Get(c *gin.Context) {
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

// Update PUT /v1/customers/:id
func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/customers/:id — rejected while the customer has orders.
func (h *CustomersHandler) Delete(c *gin.Context) {
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
