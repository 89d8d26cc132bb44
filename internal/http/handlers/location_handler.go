// README: Location validation handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/location"
)

const validateTimeout = 15 * time.Second

type LocationHandler struct {
	validator *location.Service
}

func NewLocationHandler(validator *location.Service) *LocationHandler {
	return &LocationHandler{validator: validator}
}

type validateReq struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Validate handles POST /api/locations/validate. Always 200; the verdict is
// in the body because the gate itself has no failure mode.
func (h *LocationHandler) Validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), validateTimeout)
	defer cancel()

	valid := h.validator.Validate(ctx, req.Country, req.State, req.City, req.PostalCode)
	writeJSON(c, http.StatusOK, gin.H{"valid": valid})
}
