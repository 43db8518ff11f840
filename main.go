package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"silver_site/config"
	"silver_site/handlers"
	"silver_site/middleware"
	"silver_site/web"
)

type HealthResponse struct {
	Status string `json:"status"`
	Data   struct {
		Purchases string `json:"purchases"`
		Prices    string `json:"prices"`
		Shapefile string `json:"shapefile"`
	} `json:"data"`
}

func fileStatus(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return "ok"
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok"}
	response.Data.Purchases = fileStatus(config.PurchasesPath())
	response.Data.Prices = fileStatus(config.PricesPath())
	response.Data.Shapefile = fileStatus(config.ShapefilePath)

	if response.Data.Purchases != "ok" || response.Data.Prices != "ok" {
		response.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding health response: %v", err)
	}
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	config.LoadConfig()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("No PORT environment variable found, using default: %s", port)
	}

	// Dataset and chart caches
	config.InitCache()
	log.Println("Caches initialized")

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
		},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin"},
		MaxAge:         86400,
	})

	// Apply middlewares in correct order
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	// Dashboard UI
	r.PathPrefix("/").Handler(web.Handler())

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Dashboard: http://localhost:%s/", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(api *mux.Router) {
	// Calculator routes
	api.HandleFunc("/calculator", handlers.CalculateCost).Methods("POST", "OPTIONS")

	// Price history routes
	api.HandleFunc("/prices/history", handlers.GetPriceHistory).Methods("GET")
	api.HandleFunc("/prices/history/chart", handlers.GetPriceHistoryChart).Methods("GET")

	// Sales insight routes
	api.HandleFunc("/sales/summary", handlers.GetSalesSummary).Methods("GET")
	api.HandleFunc("/sales/top", handlers.GetTopStates).Methods("GET")
	api.HandleFunc("/sales/top/chart", handlers.GetTopStatesChart).Methods("GET")
	api.HandleFunc("/sales/january/chart", handlers.GetJanuaryTrendChart).Methods("GET")

	// Geographic routes
	api.HandleFunc("/geo/columns", handlers.GetShapefileColumns).Methods("GET")
	api.HandleFunc("/geo/summary", handlers.GetGeoSummary).Methods("GET")
	api.HandleFunc("/geo/choropleth", handlers.GetChoropleth).Methods("GET")

	// Health check
	api.HandleFunc("/health", healthCheck).Methods("GET")
}
