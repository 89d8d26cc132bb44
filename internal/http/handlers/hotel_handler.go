// README: Hotel suggestion handler; derives currency from the saved itinerary.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
)

const suggestTimeout = 60 * time.Second

type HotelHandler struct {
	hotels *hotel.Service
	store  *itinerary.Store
}

func NewHotelHandler(hotels *hotel.Service, store *itinerary.Store) *HotelHandler {
	return &HotelHandler{hotels: hotels, store: store}
}

type hotelSearchReq struct {
	MinPrice int `json:"min_price"`
	MaxPrice int `json:"max_price"`
}

// Suggest handles POST /api/itineraries/:id/hotels. The price band is the
// caller's responsibility (the UI exposes budget/mid-range/luxury presets);
// arbitrary values are accepted and passed through.
func (h *HotelHandler) Suggest(c *gin.Context) {
	var req hotelSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.MinPrice == 0 && req.MaxPrice == 0 {
		writeError(c, http.StatusBadRequest, "missing price range")
		return
	}

	it, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePipelineError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), suggestTimeout)
	defer cancel()

	currency := hotel.ExtractCurrency(it.TotalEstimatedCost)
	hotels, err := h.hotels.Suggest(ctx, it.Location.City, it.Location.Country, currency, req.MinPrice, req.MaxPrice)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	if hotels == nil {
		// An empty list is a valid outcome, not an error.
		hotels = []hotel.Hotel{}
	}
	writeJSON(c, http.StatusOK, gin.H{"currency": currency, "hotels": hotels})
}
