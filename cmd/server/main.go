package main

import (
	"log"
	"net/http"

	"wastesense-backend/internal/config"
	"wastesense-backend/internal/database"
	"wastesense-backend/internal/handlers"
	"wastesense-backend/internal/history"
	"wastesense-backend/internal/middleware"
	"wastesense-backend/internal/notify"
	"wastesense-backend/internal/ratelimit"
	"wastesense-backend/internal/services"
	"wastesense-backend/internal/store"
	"wastesense-backend/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 WASTESENSE BACKEND SERVER STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Load .env file
	log.Println("📂 Loading environment variables...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables from system")
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	cfg := config.Load()

	// Historical data source: Postgres when DATABASE_URL is set, CSV otherwise
	var historySource history.Source
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			log.Println("❌ FATAL ERROR: Database connection failed")
			log.Printf("   Error: %v", err)
			log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			log.Fatal(err)
		}
		defer db.Close()

		log.Println("🔄 Running database migrations...")
		if err := database.Migrate(db); err != nil {
			log.Println("❌ FATAL ERROR: Database migrations failed")
			log.Fatal(err)
		}
		log.Println("✅ Database migrations completed")

		// Import the generated CSV into a fresh database
		if rows, err := history.NewCSVSource(cfg.HistoricalDataFile).DailyTotals(); err == nil && len(rows) > 0 {
			if err := database.SeedDailyWaste(db, rows); err != nil {
				log.Println("❌ FATAL ERROR: Daily waste seeding failed")
				log.Fatal(err)
			}
		}

		historySource = history.NewPostgresSource(db)
	} else {
		log.Println("⚠️  DATABASE_URL not set, reading historical data from CSV")
		historySource = history.NewCSVSource(cfg.HistoricalDataFile)
	}

	// Initialize Firebase Cloud Messaging
	// Supports both file path and base64-encoded credentials (for Railway/cloud deployments)
	var fcmService *services.FCMService
	var err error
	if cfg.FCMCredentialsBase64 != "" {
		fcmService, err = services.NewFCMServiceFromBase64(cfg.FCMCredentialsBase64)
		if err != nil {
			log.Printf("⚠️  Failed to initialize FCM from base64: %v (push notifications disabled)", err)
			fcmService = nil
		} else {
			log.Println("✅ Firebase Cloud Messaging initialized from base64 credentials")
		}
	} else if cfg.FCMCredentialsFile != "" {
		fcmService, err = services.NewFCMService(cfg.FCMCredentialsFile)
		if err != nil {
			log.Printf("⚠️  Failed to initialize FCM from file: %v (push notifications disabled)", err)
			fcmService = nil
		} else {
			log.Println("✅ Firebase Cloud Messaging initialized from file")
		}
	} else {
		log.Println("⚠️  No Firebase credentials configured, push notifications disabled")
	}

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()
	log.Println("✅ WebSocket hub started")

	// Core services
	binStore := store.NewBinStore()
	limiter := ratelimit.NewLimiter()
	notifier := notify.NewNotifier(fcmService, wsHub, cfg.FCMAlertTopic)
	historyManager := history.NewManager(historySource)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Rate limiting applies to every route, before any authentication
	r.Use(middleware.RateLimit(limiter, cfg.RateLimitRequests, cfg.RateLimitWindow))

	// System endpoints
	r.Get("/", handlers.Root(binStore, cfg.HistoricalDataFile))
	r.Get("/health", handlers.Health(binStore, cfg.HistoricalDataFile))

	// Token issuing (stand-in for a real login flow)
	r.Post("/auth/token", handlers.CreateToken(cfg.SecretKey, cfg.TokenTTL))

	// IoT ingest and bin status
	r.Post("/data", handlers.ReceiveReading(binStore, notifier, wsHub))
	r.Get("/status", handlers.GetAllBinsStatus(binStore))
	r.Get("/status/{bin_id}", handlers.GetBinStatus(binStore))

	// Dashboard data
	r.Get("/dashboard/data", handlers.GetDashboardData(historyManager))

	// WebSocket endpoint (authentication handled in handler via query param)
	r.Get("/ws", websocket.HandleWebSocket(wsHub, cfg.SecretKey))

	// Mock fleet data for the dispatch UI
	r.Route("/api", func(r chi.Router) {
		r.Get("/bins", handlers.GetFleetBins())
		r.Get("/drivers", handlers.GetFleetDrivers())
		r.Get("/stations", handlers.GetFleetStations())
		r.Get("/trips", handlers.GetTrips())
		r.Post("/dispatch", handlers.DispatchTrip())
		r.Patch("/trips/{id}", handlers.UpdateTrip())
	})

	// Admin endpoints (require a valid bearer token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.SecretKey))

		r.Get("/admin/bins", handlers.AdminBins(binStore))
		r.Get("/admin/dashboard", handlers.AdminDashboard(binStore, historyManager))
	})

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Server starting on http://localhost:%s", cfg.Port)
	log.Println("🔌 Ready to accept requests!")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Start server
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Println("❌ FATAL ERROR: Server failed to start")
		log.Printf("   Error: %v", err)
		log.Printf("   Port: %s", cfg.Port)
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Fatal(err)
	}
}
