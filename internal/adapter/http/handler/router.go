package handler

import (
	"adyen-notification-reconciler/internal/adapter/http/middleware"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	NotificationSvc ports.NotificationService
	Authenticator   ports.MerchantAuthenticator
	RateLimitStore  middleware.RateLimitStore // nil = rate limiting disabled
	RateLimit       middleware.RateLimitRule
	HealthCheckers  []ports.HealthChecker
	MaxBodyBytes    int64
	Mode            string
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	chain := []gin.HandlerFunc{middleware.BasicAuth(deps.Authenticator, deps.Logger)}
	if deps.RateLimitStore != nil {
		chain = append(chain, middleware.RateLimiter(deps.RateLimitStore, deps.RateLimit, deps.Logger))
	}

	notifications := NewNotificationHandler(deps.NotificationSvc, deps.Logger)
	v1 := r.Group("/api/v1")
	v1.POST("/notifications/:"+middleware.ParamCode, append(chain, notifications.Receive)...)

	return r
}
