package main

import (
	_ "instacar/docs"
	"instacar/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Instacar Quote Service API
// @version         1.0
// @description     Vehicle purchase quote lifecycle (instant offers, pickup scheduling, self-service) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Shared admin API token. Type "Bearer" followed by a space and the token.

func main() {
	routes.Run()
}
