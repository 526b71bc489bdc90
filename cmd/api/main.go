package main

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"shopsphere/internal/adapter/api"
	"shopsphere/internal/adapter/api/handler"
	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/adapter/api/router"
	"shopsphere/internal/adapter/repository"
	"shopsphere/internal/infrastructure/auth"
	"shopsphere/internal/infrastructure/gemini"
	"shopsphere/internal/infrastructure/ratelimit"
	"shopsphere/internal/infrastructure/websocket"
	"shopsphere/internal/usecase"
	"shopsphere/pkg/config"
	"shopsphere/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	if cfg.FirestoreProject == "" {
		logger.Fatal("FIRESTORE_PROJECT_ID is required")
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		logger.Fatal("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	accountRepo := repository.NewFirestoreAccountRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL)

	authUseCase := usecase.NewAuthUseCase(accountRepo, jwtManager)
	adminUseCase := usecase.NewAdminUseCase(accountRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, accountRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, accountRepo, productRepo, rateLimiter, wsManager)
	recommendationUseCase := usecase.NewRecommendationUseCase(geminiClient)

	wsManager.SetChatService(chatUseCase)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Validator = api.NewValidator()

	authMw := middleware.NewAuthMiddleware(jwtManager)

	router.Setup(e, router.Handlers{
		Auth:           handler.NewAuthHandler(authUseCase),
		Product:        handler.NewProductHandler(productUseCase),
		Chat:           handler.NewChatHandler(chatUseCase),
		Admin:          handler.NewAdminHandler(adminUseCase),
		Recommendation: handler.NewRecommendationHandler(recommendationUseCase),
		WebSocket:      handler.NewWebSocketHandler(wsManager, jwtManager),
		Health:         handler.NewHealthHandler(cfg.Environment),
	}, authMw)

	logger.Info("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Server stopped: %v", err)
	}
}
