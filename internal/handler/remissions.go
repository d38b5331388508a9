package handler

import (
	"net/http"

	"comercio/internal/dto"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
)

type RemissionsHandler struct{ svc service.RemissionService }

func NewRemissionsHandler(svc service.RemissionService) *RemissionsHandler {
	return &RemissionsHandler{svc: svc}
}

// Create POST /v1/remissions
func (h *RemissionsHandler) Create(c *gin.Context) {
	var req dto.CreateRemissionRequest
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

// List GET /v1/remissions
func (h *RemissionsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/remissions/:id
func (h *RemissionsHandler) Get(c *gin.Context) {
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

// Update PUT /v1/remissions/:id — status is not updatable here; only the
// close operation moves a remission forward.
func (h *RemissionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRemissionRequest
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

// Delete DELETE /v1/remissions/:id — rejected while sales or credits exist.
func (h *RemissionsHandler) Delete(c *gin.Context) {
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

// Close POST /v1/remissions/:id/close — atomic open → closed transition.
func (h *RemissionsHandler) Close(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Close(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CloseResponse{Message: "Remission cerrada correctamente."})
}

// Summary GET /v1/remissions/:id/summary — current ledger totals.
func (h *RemissionsHandler) Summary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
