package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hearingclinic/admin-api/internal/auth"
	"github.com/hearingclinic/admin-api/internal/cache"
	"github.com/hearingclinic/admin-api/internal/config"
	"github.com/hearingclinic/admin-api/internal/database"
	"github.com/hearingclinic/admin-api/internal/handlers"
	"github.com/hearingclinic/admin-api/internal/middleware"
	"github.com/hearingclinic/admin-api/internal/repository"
	"github.com/hearingclinic/admin-api/internal/services"
	"github.com/hearingclinic/admin-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	seedAdmin := flag.Bool("seed-admin", false, "create the initial admin user from ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Starting Clinic Admin API")

	// Connect to database
	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		LogLevel: cfg.Database.LogLevel,
	}

	if err := database.Connect(dbConfig); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	// Initialize cache
	var cacheImpl cache.Cache
	if cfg.Cache.Enabled && cfg.Cache.Type == "redis" {
		addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		cacheImpl, err = cache.NewRedisCache(addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		log.Info().Msg("Redis cache initialized")
	} else {
		cacheImpl = cache.NewMemoryCache()
		log.Info().Msg("Memory cache initialized")
	}
	defer cacheImpl.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	contactRepo := repository.NewContactRepository()
	apptRepo := repository.NewAppointmentRepository()
	slotRepo := repository.NewSlotRepository()

	// Initialize services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens)
	contactService := services.NewContactService(contactRepo)
	apptService := services.NewAppointmentService(apptRepo, slotRepo)
	slotService := services.NewSlotService(slotRepo)
	statsService := services.NewStatsService(contactRepo, apptRepo, cacheImpl, cfg.Cache.StatsTTL)

	if *seedAdmin {
		err := authService.SeedAdmin(context.Background(),
			os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed admin user")
		}
		log.Info().Msg("Admin user seeded")
		return
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService)
	apptHandler := handlers.NewAppointmentHandler(apptService)
	slotHandler := handlers.NewSlotHandler(slotService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health endpoints (no authentication required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		// Login, rate limited per client IP
		r.With(middleware.RateLimit(loginLimiter)).Post("/auth/login", authHandler.Login)

		// Public inquiry-form intake
		r.Post("/contacts", contactHandler.CreateContact)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))
			r.Use(middleware.RequireRole("admin"))

			r.Get("/contacts", contactHandler.ListContacts)
			r.Put("/contacts/{id}", contactHandler.UpdateContactStatus)
			r.Delete("/contacts/{id}", contactHandler.DeleteContact)

			r.Get("/appointments", apptHandler.ListAppointments)
			r.Post("/appointments", apptHandler.CreateAppointment)
			r.Put("/appointments/{id}", apptHandler.UpdateAppointment)
			r.Delete("/appointments/{id}", apptHandler.DeleteAppointment)

			r.Get("/surgery-slots", slotHandler.ListSlots)
			r.Post("/surgery-slots", slotHandler.CreateSlot)
			r.Delete("/surgery-slots/{id}", slotHandler.DeleteSlot)

			r.Get("/dashboard/stats", dashboardHandler.Stats)
		})
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
