package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"innovest/internal/adapter/api"
	"innovest/internal/adapter/api/handler"
	apimiddleware "innovest/internal/adapter/api/middleware"
	"innovest/internal/adapter/api/router"
	"innovest/internal/adapter/repository"
	"innovest/internal/infrastructure/firebase"
	"innovest/internal/infrastructure/gemini"
	"innovest/internal/infrastructure/live"
	"innovest/internal/infrastructure/websocket"
	"innovest/internal/usecase"
	"innovest/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account JSON in the environment wins; a file path is the
	// local-development fallback.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	pitchRepo := repository.NewFirestorePitchRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	geminiClient := gemini.NewClient(cfg.GeminiApiKey, cfg.GeminiModel)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	liveSource := live.NewFirestoreSource(firestoreClient)
	sessions := live.NewSessions(liveSource.Subscribe)
	defer sessions.StopAll()

	authUseCase := usecase.NewAuthUseCase(profileRepo, firebaseAuthClient)
	messagingUseCase := usecase.NewMessagingUseCase(conversationRepo, profileRepo)
	matchmakingUseCase := usecase.NewMatchmakingUseCase(profileRepo)
	pitchUseCase := usecase.NewPitchUseCase(pitchRepo, profileRepo)
	assistantUseCase := usecase.NewAssistantUseCase(profileRepo, geminiClient)

	handler.Setup(authUseCase, messagingUseCase, matchmakingUseCase, pitchUseCase, assistantUseCase, sessions)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware, messagingUseCase, sessions)

	router.Setup(e, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
