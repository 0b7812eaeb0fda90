package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "instacar/docs" // This will be auto-generated
	"instacar/internal/adapter/http/handlers"
	"instacar/internal/adapter/persistence/repository"
	"instacar/internal/infrastructure/database"
	"instacar/internal/infrastructure/notifications"
	"instacar/internal/infrastructure/ratelimit"
	"instacar/internal/usecase"
	"instacar/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)

	var notifier interfaces.INotifier
	if brokers := splitCSV(os.Getenv("KAFKA_BROKERS")); len(brokers) > 0 {
		notifier = notifications.NewKafkaNotifier(brokers, os.Getenv("NOTIFICATIONS_TOPIC"))
		log.Printf("[quote][routes] kafka notifier enabled brokers=%v", brokers)
	} else {
		log.Printf("[quote][routes] KAFKA_BROKERS not set; notifications disabled")
	}

	var limiter interfaces.IRateLimiter
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		limiter = ratelimit.NewRedisLimiter(rdb, lookupRateThreshold(), time.Minute)
		log.Printf("[quote][routes] redis rate limiter enabled addr=%s", addr)
	} else {
		log.Printf("[quote][routes] REDIS_ADDR not set; lookup throttling disabled")
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notifier, limiter)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	adminHandler := handlers.NewAdminQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addAdminRoutes(v1, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func lookupRateThreshold() int64 {
	if v := os.Getenv("LOOKUP_RATE_THRESHOLD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 10
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
