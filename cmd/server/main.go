package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dapper/internal/db"
	"dapper/internal/handlers"
	"dapper/internal/journey"
	mw "dapper/internal/middleware"
	"dapper/internal/openrouter"
	"dapper/internal/store"
)

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func main() {
	_ = godotenv.Load()

	var logger *zap.Logger
	if os.Getenv("APP_ENV") == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	port := getenv("PORT", "8080")

	var courseStore store.CourseStore
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dbConn, err := sqlx.Open("pgx", databaseURL)
		if err != nil {
			logger.Fatal("failed to open db", zap.Error(err))
		}
		dbConn.SetMaxOpenConns(10)
		dbConn.SetConnMaxLifetime(2 * time.Hour)
		if err = dbConn.Ping(); err != nil {
			logger.Fatal("failed to ping db", zap.Error(err))
		}
		if err := db.RunMigrations(dbConn); err != nil {
			logger.Fatal("failed migrations", zap.Error(err))
		}
		courseStore = store.NewPostgres(dbConn, logger)
	} else {
		logger.Warn("DATABASE_URL not set; courses are kept in memory and lost on restart")
		courseStore = store.NewMemory()
	}

	llm := openrouter.New(openrouter.Config{
		APIKey:    os.Getenv("OPENROUTER_API_KEY"),
		BaseURL:   getenv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:     getenv("OPENROUTER_MODEL", "anthropic/claude-3-opus-20240229"),
		Referrer:  os.Getenv("OPENROUTER_REFERRER"),
		MaxTokens: getenvInt("LLM_MAX_TOKENS", 4000),
		Timeout:   time.Duration(getenvInt("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
	}, logger)
	if !llm.Configured() {
		logger.Warn("OPENROUTER_API_KEY not set; courses are generated from templates only")
	}
	generator := journey.NewGenerator(llm, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	courseHandler := handlers.NewCourseHandler(courseStore, generator, logger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/courses/generate/", courseHandler.Generate)
		api.Post("/courses/{courseID}/progress/", courseHandler.UpdateProgress)
		api.Get("/courses/", courseHandler.List)
	})

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
