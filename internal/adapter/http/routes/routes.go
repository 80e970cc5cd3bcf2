package routes

import (
	"context"
	"log"
	"os"

	_ "ridgeline_roofing/docs" // swag-generated OpenAPI document
	"ridgeline_roofing/internal/adapter/http/handlers"
	"ridgeline_roofing/internal/infrastructure/database"
	"ridgeline_roofing/internal/infrastructure/email"
	"ridgeline_roofing/internal/infrastructure/pdf"
	"ridgeline_roofing/internal/infrastructure/ratelimit"
	"ridgeline_roofing/internal/usecase"
	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := connectRateLimitStore()

	var emailGateway interfaces.IEmailGateway
	smtpGateway, err := email.NewSMTPGatewayFromEnv()
	if err != nil {
		log.Printf("Email gateway not configured: %v", err)
	} else {
		emailGateway = smtpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(emailGateway, pdf.NewEstimateRenderer())
	submissionUseCase := usecase.NewSubmissionUseCase(store, emailGateway, usecase.DefaultFormConfigs(), os.Getenv("LEADS_INBOX"))

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatingRoutes(v1, estimateHandler)
	addFormRoutes(v1, submissionHandler)
}

// connectRateLimitStore picks the shared counter backend. Memory is the
// default and suits a single instance; redis and dynamodb share counters
// across replicas.
func connectRateLimitStore() interfaces.IRateLimitStore {
	backend := os.Getenv("RATE_LIMIT_BACKEND")
	switch backend {
	case "redis":
		client, err := database.NewRedisClient(context.Background(), os.Getenv("REDIS_URL"))
		if err != nil {
			log.Fatalf("Failed to connect to redis rate limit backend: %v", err)
		}
		return ratelimit.NewRedisStore(client)
	case "dynamodb":
		return ratelimit.NewDynamoDBStore(database.ConnectDynamoDB())
	case "", "memory":
		return ratelimit.NewMemoryStore()
	default:
		log.Printf("Unknown RATE_LIMIT_BACKEND %q, falling back to memory", backend)
		return ratelimit.NewMemoryStore()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
