package api

import (
	"fmt"

	"github.com/gorilla/mux"

	"github.com/recenterhq/driftcheck/internal/config"
	"github.com/recenterhq/driftcheck/internal/db"
	"github.com/recenterhq/driftcheck/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	checkinsHandler, err := NewCheckinsHandler(repo, repo)
	if err != nil {
		return nil, fmt.Errorf("setup checkins handler: %w", err)
	}
	feedbackHandler := NewFeedbackHandler(repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Check-in endpoints
	apiV1.HandleFunc("/checkins", checkinsHandler.CreateCheckin).Methods("POST")
	apiV1.HandleFunc("/checkins", checkinsHandler.ListCheckins).Methods("GET")

	// Tip feedback endpoints
	apiV1.HandleFunc("/tip-feedback", feedbackHandler.CreateFeedback).Methods("POST")

	return r, nil
}
