package api

import (
	"github.com/Dorian509/BackEnd/internal/config"
	"github.com/Dorian509/BackEnd/internal/db"
	"github.com/Dorian509/BackEnd/internal/hydration"
	"github.com/Dorian509/BackEnd/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and engine
	repo := sqlite.New(db, logger)
	svc := hydration.NewService(repo, repo, nil, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, svc, cfg.JWTSecret, cfg.TokenDuration)
	profileHandler := NewProfileHandler(svc)
	hydrationHandler := NewHydrationHandler(svc)
	intakesHandler := NewIntakesHandler(svc)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Profile endpoints
	apiRouter.HandleFunc("/profile", profileHandler.CreateProfile).Methods("POST")
	apiRouter.HandleFunc("/profile/{id}", profileHandler.GetProfile).Methods("GET")
	apiRouter.HandleFunc("/profile/{id}", profileHandler.UpdateProfile).Methods("PUT")

	// Hydration status endpoints
	apiRouter.HandleFunc("/hydration/today/{userId}", hydrationHandler.TodayStatus).Methods("GET")

	// Intake endpoints
	apiRouter.HandleFunc("/intakes", intakesHandler.CreateIntake).Methods("POST")
	apiRouter.HandleFunc("/intakes/{userId}/recent", intakesHandler.RecentIntakes).Methods("GET")
	apiRouter.HandleFunc("/intakes/{userId}/today", hydrationHandler.TodayIntakes).Methods("GET")
	apiRouter.HandleFunc("/intakes/{intakeId}", intakesHandler.DeleteIntake).Methods("DELETE")

	return r
}
