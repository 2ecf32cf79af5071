package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/shenikar/location_sharing_system/internal/config"
	v1 "github.com/shenikar/location_sharing_system/internal/handler/http/v1"
	"github.com/shenikar/location_sharing_system/internal/repository"
	"github.com/shenikar/location_sharing_system/internal/service"
	"github.com/shenikar/location_sharing_system/internal/webhook"
	"github.com/shenikar/location_sharing_system/internal/ws"
	"github.com/shenikar/location_sharing_system/pkg/logger"
	"github.com/shenikar/location_sharing_system/pkg/postgres"
	redisclient "github.com/shenikar/location_sharing_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/location_sharing_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Location Sharing System API
// @version 1.0
// @description Real-time location sharing and geo-incident API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Менеджер JWT токенов
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	// Инициализация издателя вебхуков и воркера
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Хаб WebSocket-подключений
	hub := ws.NewHub(log)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	friendRepo := repository.NewFriendRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	chatRepo := repository.NewChatRepository(dbpool)
	cacheStore := repository.NewRedisCacheStore(redisClient)

	// Инициализация сервисов
	locationCache := service.NewLocationCache(cacheStore, log, cfg.CacheMaxLocations, cfg.CacheGridPrecision)
	incidentService := service.NewIncidentService(incidentRepo, locationCache, hub, webhookPublisher, log, cfg.CacheTTL)
	locationService := service.NewLocationService(userRepo, friendRepo, hub, log)
	friendService := service.NewFriendService(userRepo, friendRepo, log)
	authService := service.NewAuthService(userRepo, tokens, log)
	chatService := service.NewChatService(chatRepo, log)

	// Инициализация хэндлеров
	wsHandler := ws.NewHandler(hub, tokens, locationService, log)
	handler := v1.NewHandler(v1.HandlerDeps{
		AuthService:     authService,
		IncidentService: incidentService,
		FriendService:   friendService,
		LocationService: locationService,
		ChatService:     chatService,
		Cache:           locationCache,
		Tokens:          tokens,
		Logger:          log,
		DB:              dbpool,
		Redis:           redisClient,
	})

	// Настройка Gin роутера
	router := gin.Default()
	router.GET("/ws", wsHandler.Serve)
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
