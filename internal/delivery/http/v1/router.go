package v1

import (
	"net/http"

	"go-jobswipe-backend/config"
	"go-jobswipe-backend/internal/delivery/http/middleware"
	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Dispatcher domain.EventDispatcher
	Health     usecase.HealthUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.Health.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "Degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Webhook (platform authenticates with the shared secret header)
	webhook := v1.Group("")
	webhook.Use(middleware.WebhookAuth(deps.Config.WebhookSecret))
	{
		NewBotHandler(webhook, deps.Dispatcher)
	}

	return r
}
