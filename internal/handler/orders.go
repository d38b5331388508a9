package handler

import (
	"net/http"

	"comercio/internal/dto"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// Create POST /v1/orders
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
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

// List GET /v1/orders
func (h *OrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/orders/:id
func (h *OrdersHandler) Get(c *gin.Context) {
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

// Update PUT /v1/orders/:id
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
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

// Delete DELETE /v1/orders/:id — rejected while the order has remissions.
func (h *OrdersHandler) Delete(c *gin.Context) {
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
