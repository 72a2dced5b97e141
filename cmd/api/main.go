package main

import (
	"go.uber.org/zap"

	"lingua/internal/api"
	"lingua/internal/config"
	"lingua/internal/db"
	"lingua/internal/repository"
	"lingua/internal/service"
	"lingua/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	subscriptionRepo := repository.NewSubscriptionRepository(dbConn)
	bookmarkRepo := repository.NewBookmarkRepository(dbConn)
	exerciseRepo := repository.NewExerciseRepository(dbConn)

	// Init Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	exerciseService := service.NewExerciseService(bookmarkRepo, exerciseRepo)

	// Init Handlers
	authHandler := api.NewAuthHandler(authService)
	bookmarkHandler := api.NewBookmarkHandler(bookmarkRepo)
	exerciseHandler := api.NewExerciseHandler(exerciseRepo, exerciseService, bookmarkRepo, log)
	userHandler := api.NewUserHandler(userRepo, subscriptionRepo)

	// Router
	router := api.NewRouter(authHandler, bookmarkHandler, exerciseHandler, userHandler, cfg.JWT.Secret)

	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
