package main

import (
	"log"
	"net/http"
	"os"

	httpapi "srms-backend/internal/api/http"
	"srms-backend/internal/config"
	"srms-backend/internal/service"
	"srms-backend/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	seed := storage.DefaultSeed()
	if cfg.Seed.File != "" {
		seed, err = storage.LoadSeed(cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to load seed data: ", err)
		}
		log.Printf("[srms] seed data loaded from %s", cfg.Seed.File)
	}

	store := storage.NewStore(seed)
	qrGen := service.TrackingQRGenerator{BaseURL: cfg.QR.BaseURL}
	consumer := service.NewHeuristicConsumer(store)

	handler := httpapi.NewHandler(
		service.NewAuthService(store),
		service.NewCatalogService(store),
		service.NewOrderService(store, consumer, qrGen),
		service.NewReservationService(store),
		service.NewRecommendationService(store),
		service.NewAnalyticsService(store),
	)

	router := httpapi.NewRouter(handler)

	log.Printf("[srms] SRMS backend starting on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router))
}
