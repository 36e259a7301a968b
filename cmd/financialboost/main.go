package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	database "github.com/SergioRicJr/financial-boost/db"
	"github.com/SergioRicJr/financial-boost/internal/auth"
	"github.com/SergioRicJr/financial-boost/internal/config"
	"github.com/SergioRicJr/financial-boost/internal/finance/application"
	"github.com/SergioRicJr/financial-boost/internal/finance/infrastructure"
	"github.com/SergioRicJr/financial-boost/internal/finance/interfaces"
	"github.com/SergioRicJr/financial-boost/internal/upload"
	"github.com/SergioRicJr/financial-boost/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
) *Server {
	return &Server{
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	protect := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// CATEGORY API
	publicRoutes.Handle("POST /api/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	publicRoutes.Handle("GET /api/categories", protect(http.HandlerFunc(s.categoryHandler.GetCategories)))
	publicRoutes.Handle("GET /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.GetCategoryByID)))
	publicRoutes.Handle("DELETE /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// TRANSACTION API
	publicRoutes.Handle("POST /api/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	publicRoutes.Handle("GET /api/transactions", protect(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	publicRoutes.Handle("GET /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.GetTransactionByID)))
	publicRoutes.Handle("PUT /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	publicRoutes.Handle("DELETE /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DBConnectionString)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	uploader, err := upload.NewS3Uploader(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("Could not initialize S3 uploader: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService, uploader)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, categoryHandler, transactionHandler)
	server.RegisterRoutes()

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("Server starting on port %d...", cfg.HTTPPort)
	if err := http.ListenAndServe(addr, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
