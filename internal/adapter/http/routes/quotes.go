package routes

import (
	"net/http"
	"os"
	"strings"

	"instacar/internal/adapter/http/handlers"
	"instacar/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathAdminQuotes = "/admin/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/lookup", quoteHandler.Lookup)
		quotes.GET("/:token", quoteHandler.GetQuote)
		quotes.POST("/:token/cancel", quoteHandler.CancelQuote)
		quotes.POST("/:token/schedule-pickup", quoteHandler.SchedulePickup)
		quotes.POST("/:token/reschedule", quoteHandler.Reschedule)
		quotes.POST("/:token/contact", quoteHandler.UpdateContact)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminQuoteHandler) {
	admin := rg.Group(PathAdminQuotes)
	admin.Use(adminAuth(os.Getenv("ADMIN_API_TOKEN")))
	{
		admin.GET("/:id", adminHandler.GetQuote)
		admin.POST("/:id/approve", adminHandler.ApproveQuote)
		admin.POST("/:id/complete", adminHandler.CompleteQuote)
		admin.POST("/:id/adjust-price", adminHandler.AdjustPrice)
	}
}

// adminAuth guards the admin group with a shared bearer token and
// requires the X-Admin-Id header so actions are attributable.
func adminAuth(apiToken string) gin.HandlerFunc {
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Admin identity required", http.StatusUnauthorized)
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		adminID := strings.TrimSpace(c.GetHeader("X-Admin-Id"))
		if apiToken == "" || authz != "Bearer "+apiToken || adminID == "" {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}
		c.Set(handlers.AdminIDContextKey, adminID)
		c.Next()
	}
}
