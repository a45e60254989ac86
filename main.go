package main

import (
	"net/http"
	"os"

	"forever_server/config"
	"forever_server/middleware"
	"forever_server/routes"
	"forever_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	stripe.Key = cfg.Stripe.SecretKey

	// Initialize DynamoDB client and service
	logrus.Info("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWS)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	logrus.Info("DynamoDB client initialized.")

	// Initialize Services
	biodataService := &services.BiodataService{Dynamo: dynamoService}
	userService := &services.UserService{Dynamo: dynamoService}
	favoriteService := &services.FavoriteService{Dynamo: dynamoService}
	storyService := &services.StoryService{Dynamo: dynamoService}
	paymentService := &services.PaymentService{Dynamo: dynamoService}
	adminService := &services.AdminService{Dynamo: dynamoService}
	tokenService := services.NewTokenService(cfg.JWT)
	s3Service := services.InitializeS3Service(cfg.AWS, cfg.S3)

	auth := middleware.NewAuthMiddleware(tokenService, userService)

	// Initialize the router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging)
	r.Use(middleware.Metrics)

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterAuthRoutes(r, tokenService)
	routes.RegisterUserRoutes(r, userService, auth)
	routes.RegisterBiodataRoutes(r, biodataService, auth)
	routes.RegisterFavoriteRoutes(r, favoriteService, auth)
	routes.RegisterStoryRoutes(r, storyService, auth)
	routes.RegisterPaymentRoutes(r, paymentService, auth)
	routes.RegisterAdminRoutes(r, adminService, auth)
	routes.RegisterS3Routes(r, s3Service, auth)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	logrus.WithField("port", cfg.App.Port).Info("Starting server")
	if err := http.ListenAndServe(":"+cfg.App.Port, corsHandler); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
