// README: Itinerary handler: generate-and-save plus the saved-trip collection.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/service"
)

// Generation can take a while on long trips; budget generously.
const generateTimeout = 90 * time.Second

type ItineraryHandler struct {
	planner *service.Planner
	store   *itinerary.Store
}

func NewItineraryHandler(planner *service.Planner, store *itinerary.Store) *ItineraryHandler {
	return &ItineraryHandler{planner: planner, store: store}
}

type generateReq struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Budget     string `json:"budget"`
	Currency   string `json:"currency"`
	Days       int    `json:"days"`
	Interests  string `json:"interests"`
}

// Create handles POST /api/itineraries.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Country = strings.TrimSpace(req.Country)
	req.City = strings.TrimSpace(req.City)
	if req.Country == "" || req.City == "" {
		writeError(c, http.StatusBadRequest, "missing country or city")
		return
	}
	if req.Days < 1 {
		writeError(c, http.StatusBadRequest, "days must be at least 1")
		return
	}
	if req.Budget == "" || req.Currency == "" {
		writeError(c, http.StatusBadRequest, "missing budget or currency")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	it, err := h.planner.Plan(ctx, itinerary.GenerateRequest{
		Country:    req.Country,
		State:      strings.TrimSpace(req.State),
		City:       req.City,
		PostalCode: strings.TrimSpace(req.PostalCode),
		Budget:     req.Budget,
		Currency:   req.Currency,
		Days:       req.Days,
		Interests:  strings.TrimSpace(req.Interests),
	})
	if err != nil {
		writePipelineError(c, err)
		return
	}

	writeJSON(c, http.StatusCreated, it)
}

// List handles GET /api/itineraries.
func (h *ItineraryHandler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		writePipelineError(c, err)
		return
	}
	if list == nil {
		list = []*itinerary.Itinerary{}
	}
	writeJSON(c, http.StatusOK, list)
}

// Get handles GET /api/itineraries/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	it, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

// Delete handles DELETE /api/itineraries/:id.
func (h *ItineraryHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writePipelineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
