// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wayfarer/internal/ai"
	"wayfarer/internal/config"
	httptransport "wayfarer/internal/http"
	"wayfarer/internal/infra"
	"wayfarer/internal/maps"
	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/location"
	"wayfarer/internal/modules/route"
	"wayfarer/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := ai.NewGemini(ctx, cfg.Google.APIKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	itineraryStore := itinerary.NewStore(dbPool)
	if err := itineraryStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	itinerarySvc := itinerary.NewService(gemini)

	validatorSvc := location.NewService(gemini)
	hotelSvc := hotel.NewService(gemini)
	planner := service.NewPlanner(validatorSvc, itinerarySvc, itineraryStore)

	routeService, err := maps.NewRouteService(cfg.Google.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	routeStore := route.NewStore(redisClient, cfg.Route.EstimateTTL)
	routeSvc := route.NewService(routeService, routeStore, cfg.Google.APIKey)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:   planner,
		Store:     itineraryStore,
		Validator: validatorSvc,
		Hotels:    hotelSvc,
		Routes:    routeSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
