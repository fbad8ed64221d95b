package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/config"
	"github.com/vishwasvr/guhae-rental-property-app/routes"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize AWS clients and services once; handlers receive them by
	// reference and never mutate them after init.
	logger.Info("initializing AWS clients", zap.String("region", cfg.Region))
	dynamoService := &services.DynamoService{
		Client:    services.InitializeDynamoDBClient(cfg.Region),
		TableName: cfg.TableName,
	}
	s3Service := services.NewS3Service(services.InitializeS3Client(cfg.Region), cfg.BucketName)

	identityService := &services.JWTIdentityService{
		Dynamo: dynamoService,
		Secret: []byte(cfg.JWTSecret),
		Logger: logger,
	}
	propertyService := &services.PropertyService{Dynamo: dynamoService, Logger: logger}
	financeService := &services.FinanceService{Dynamo: dynamoService, Logger: logger}
	loanService := &services.LoanService{Dynamo: dynamoService, Logger: logger}
	profileService := &services.ProfileService{Dynamo: dynamoService, Logger: logger}

	router := routes.NewRouter(&routes.Services{
		Identity:   identityService,
		Properties: propertyService,
		Finance:    financeService,
		Loans:      loanService,
		Profiles:   profileService,
		Objects:    s3Service,
		Dynamo:     dynamoService,
		Logger:     logger,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(router)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
