package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"brewer-backend/internal/mw"
)

// RouterOptions tune the middleware in front of the API.
type RouterOptions struct {
	RateLimit rate.Limit
	Burst     int
	CacheTTL  time.Duration
}

// NewRouter creates and configures a new Gin router.
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RateLimit <= 0 {
		opts.RateLimit = rate.Limit(10)
	}
	if opts.Burst <= 0 {
		opts.Burst = 5
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(handler.recoverConfiguration))

	responses := mw.NewResponseCache(opts.CacheTTL)
	caching := responses.Cache()

	api := r.Group("/api")
	api.Use(mw.RateLimiter(opts.RateLimit, opts.Burst), responses.FlushOnWrite())
	{
		api.GET("/brews", caching, handler.GetBrews)
		api.GET("/brews/:id", caching, handler.GetBrew)
		api.GET("/coffees", caching, handler.GetCoffees)
		api.GET("/coffee-machines", caching, handler.GetCoffeeMachines)

		api.POST("/sessions", handler.CreateSession)
		api.POST("/sessions/new-brew", handler.CreateNewBrewSession)
		api.GET("/sessions/:id", handler.GetSession)
		api.DELETE("/sessions/:id", handler.DeleteSession)
		api.POST("/sessions/:id/select", handler.Select)
		api.POST("/sessions/:id/segue", handler.PerformSegue)
		api.POST("/sessions/:id/input", handler.Input)
		api.POST("/sessions/:id/alert", handler.AnswerAlert)
		api.POST("/sessions/:id/back", handler.Back)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
		api.GET("/analytics/screens", handler.GetScreenCounts)
	}

	return r
}
