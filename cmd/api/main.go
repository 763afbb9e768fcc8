package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/urbanest/rental-search/api/internal/auth"
	"github.com/urbanest/rental-search/api/internal/config"
	"github.com/urbanest/rental-search/api/internal/database"
	"github.com/urbanest/rental-search/api/internal/handler"
	middlewarepkg "github.com/urbanest/rental-search/api/internal/middleware"
	"github.com/urbanest/rental-search/api/internal/quota"
	"github.com/urbanest/rental-search/api/internal/repository"
	"github.com/urbanest/rental-search/api/internal/router"
	"github.com/urbanest/rental-search/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	propertiesRepo := repository.NewPGXPropertiesRepository(pool)
	savedSearchesRepo := repository.NewPGXSavedSearchesRepository(pool)

	contactCounters := quota.NewCounters(redisClient)

	authService := service.NewAuthService(usersRepo, jwtManager)
	userService := service.NewUserService(usersRepo)
	contactService := service.NewContactService(propertiesRepo, contactCounters, cfg.FreeContactLimit)
	savedSearchService := service.NewSavedSearchService(savedSearchesRepo)

	searchClient := handler.NewSearchClient(nil, cfg.SearchBaseURL)
	searchService := service.NewSearchService(searchClient, service.NewComposer(cfg.DefaultCity))

	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Users:         handler.NewUserAdminHandler(userService),
		Search:        handler.NewSearchHandler(searchService),
		Localities:    handler.NewLocalityHandler(),
		Contact:       handler.NewContactHandler(contactService),
		SavedSearches: handler.NewSavedSearchHandler(savedSearchService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
