// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePipelineError maps pipeline failures onto HTTP statuses. Oracle and
// parse failures surface as 502 with the wrapped cause so the UI can show a
// readable message; they are never conflated with empty results.
func writePipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrImplausibleLocation):
		writeError(c, http.StatusUnprocessableEntity,
			"The location details provided seem to be incorrect. Please check the Country, State, City, and Pincode and try again.")
	case errors.Is(err, ai.ErrGenerationFailed), errors.Is(err, ai.ErrMalformedResponse):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
