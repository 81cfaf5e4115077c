package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/atulmcoder/sbsauto2Server/cmd/app"
	"github.com/atulmcoder/sbsauto2Server/internal/config"
	handlers "github.com/atulmcoder/sbsauto2Server/internal/handler"
	"github.com/atulmcoder/sbsauto2Server/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}
	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		logger.Fatal("ADMIN_USER and ADMIN_PASS are not set")
	}

	db, _, services := app.App(cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	api.HandleFunc("/products", handler.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", handler.GetProduct).Methods(http.MethodGet)

	api.HandleFunc("/users", handler.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/users", handler.GetContacts).Methods(http.MethodGet)

	// Mutating product routes sit behind the token check and the admin gate.
	admin := api.PathPrefix("/products").Subrouter()
	admin.Use(
		middleware.AuthMiddleware(services.Auth),
		middleware.AdminOnlyMiddleware(services.Auth),
	)
	admin.HandleFunc("", handler.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", handler.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", handler.DeleteProduct).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.LoggingMiddleware(logger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server listening", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
