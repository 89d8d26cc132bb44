// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/http/middleware"
	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/location"
	"wayfarer/internal/modules/route"
	"wayfarer/internal/service"
)

type RouterDeps struct {
	Planner   *service.Planner
	Store     *itinerary.Store
	Validator *location.Service
	Hotels    *hotel.Service
	Routes    *route.Service
}

// NewRouter builds the Gin engine with CORS for the browser SPA consumer.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	locationHandler := handlers.NewLocationHandler(deps.Validator)
	r.POST("/api/locations/validate", locationHandler.Validate)

	itineraryHandler := handlers.NewItineraryHandler(deps.Planner, deps.Store)
	r.POST("/api/itineraries", itineraryHandler.Create)
	r.GET("/api/itineraries", itineraryHandler.List)
	r.GET("/api/itineraries/:id", itineraryHandler.Get)
	r.DELETE("/api/itineraries/:id", itineraryHandler.Delete)

	hotelHandler := handlers.NewHotelHandler(deps.Hotels, deps.Store)
	r.POST("/api/itineraries/:id/hotels", hotelHandler.Suggest)

	routeHandler := handlers.NewRouteHandler(deps.Routes, deps.Store)
	r.GET("/api/itineraries/:id/days/:day/route", routeHandler.Day)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
