package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"imagedrop/internal/adapter/api/handler"
	"imagedrop/internal/adapter/api/router"
	"imagedrop/internal/adapter/api/view"
	"imagedrop/internal/adapter/repository"
	"imagedrop/internal/infrastructure/storage"
	"imagedrop/internal/usecase"
	"imagedrop/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		log.Printf("Using service account credentials from %s", cfg.CredentialsFile)
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	// On Cloud Run the clients pick up Application Default Credentials and
	// the project ID from the metadata server.
	projectID := cfg.GoogleCloudProject
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	firestoreClient, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewGCSClient(ctx, cfg.GCSBucket, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	recordRepo := repository.NewFirestoreUploadRecordRepository(firestoreClient, cfg.FirestoreCollection)
	uploadUseCase := usecase.NewUploadUseCase(storageClient, recordRepo)

	uploadHandler := handler.NewUploadHandler(uploadUseCase, cfg)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Renderer = view.NewRenderer()

	router.Setup(e, uploadHandler, healthHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
