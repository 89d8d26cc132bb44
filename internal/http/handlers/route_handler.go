// README: Day-route handler; projects one saved day onto an ordered map route.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/route"
)

type RouteHandler struct {
	routes *route.Service
	store  *itinerary.Store
}

func NewRouteHandler(routes *route.Service, store *itinerary.Store) *RouteHandler {
	return &RouteHandler{routes: routes, store: store}
}

// Day handles GET /api/itineraries/:id/days/:day/route.
func (h *RouteHandler) Day(c *gin.Context) {
	dayNum, err := strconv.Atoi(c.Param("day"))
	if err != nil || dayNum < 1 {
		writeError(c, http.StatusBadRequest, "invalid day number")
		return
	}

	it, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePipelineError(c, err)
		return
	}

	var day *itinerary.DayPlan
	for i := range it.Days {
		if it.Days[i].Day == dayNum {
			day = &it.Days[i]
			break
		}
	}
	if day == nil {
		writeError(c, http.StatusNotFound, "day not found in itinerary")
		return
	}

	writeJSON(c, http.StatusOK, h.routes.BuildDayRoute(c.Request.Context(), it.Location, *day))
}
