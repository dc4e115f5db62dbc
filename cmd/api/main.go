package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/firaol-d/clubhub/internal/handler/http"
	redisclient "github.com/firaol-d/clubhub/internal/infrastructure/cache"
	"github.com/firaol-d/clubhub/internal/infrastructure/config"
	"github.com/firaol-d/clubhub/internal/infrastructure/database"
	externalservices "github.com/firaol-d/clubhub/internal/infrastructure/external_services"
	"github.com/firaol-d/clubhub/internal/infrastructure/jwt"
	"github.com/firaol-d/clubhub/internal/infrastructure/logger"
	passwordservice "github.com/firaol-d/clubhub/internal/infrastructure/password_service"
	"github.com/firaol-d/clubhub/internal/infrastructure/repository/mongodb"
	"github.com/firaol-d/clubhub/internal/infrastructure/store"
	"github.com/firaol-d/clubhub/internal/infrastructure/uuidgen"
	"github.com/firaol-d/clubhub/internal/infrastructure/validator"
	"github.com/firaol-d/clubhub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(ctx, mongoURI, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL environment variable not set")
	}
	rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Database()
	userRepo := mongodb.NewUserRepository(db)
	tagRepo := mongodb.NewTagRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	tokenStore := store.NewTokenStore(rdb)

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	hasher := passwordservice.NewHasher()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)

	mailService := externalservices.NewMailService(externalservices.SMTPConfig{
		Host:     os.Getenv("EMAIL_HOST"),
		Port:     os.Getenv("EMAIL_PORT"),
		Username: os.Getenv("EMAIL_USERNAME"),
		Password: os.Getenv("EMAIL_APP_PASSWORD"),
		From:     os.Getenv("EMAIL_FROM"),
	}, appLogger)
	imageService := externalservices.NewImageService(
		os.Getenv("ASSET_HOST_URL"),
		os.Getenv("ASSET_HOST_API_KEY"),
		appLogger,
	)

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenStore, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator)
	membershipUsecase := usecase.NewMembershipUseCase(userRepo, mailService, appLogger)
	tagUsecase := usecase.NewTagUseCase(tagRepo, uuidGenerator, appLogger)
	tagResolver := usecase.NewTagResolver(tagRepo, uuidGenerator, appLogger)
	contentUsecase := usecase.NewContentUseCase(contentRepo, tagRepo, tagResolver, imageService, uuidGenerator, appLogger, appConfig)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, contentRepo, uuidGenerator, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, membershipUsecase, tagUsecase, contentUsecase, commentUsecase, appLogger)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
