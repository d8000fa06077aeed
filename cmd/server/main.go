package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/azzaconstruction/contact-backend/internal/config"
	"github.com/azzaconstruction/contact-backend/internal/handlers"
	"github.com/azzaconstruction/contact-backend/internal/mailer"
	"github.com/azzaconstruction/contact-backend/internal/middleware"
	"github.com/azzaconstruction/contact-backend/internal/routes"
	"github.com/azzaconstruction/contact-backend/internal/services"
	"github.com/azzaconstruction/contact-backend/internal/store"
	"github.com/azzaconstruction/contact-backend/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	// Load env
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("no .env file found, using environment variables from OS")
	}

	// Load configuration
	cfg := config.Load()

	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logger.Log.Warn("EMAIL_USER/EMAIL_PASS not set; notification sends will fail")
	}

	// Select the storage backend. Exactly one backend is active per deployment.
	logger.Log.Info("initializing submission store", zap.String("backend", cfg.StoreBackend))
	st, err := store.New(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize store", zap.Error(err))
	}
	defer st.Close()

	m, err := mailer.New(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize mailer", zap.Error(err))
	}

	contactService := services.NewContactService(st, m, logger.Log)
	contactHandler := handlers.NewContactHandler(contactService)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RequestLog(logger.Log))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, contactHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Log.Info("contact backend running",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Environment))
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
