package middleware

import (
	"net/http"
	"time"

	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/pkg/apperror"
	"adyen-notification-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderRequestID carries the request correlation id.
	HeaderRequestID = "X-Request-ID"

	// ParamCode is the route parameter holding the payment method code.
	ParamCode = "code"

	// Context keys
	CtxRequestID = "request_id"
	CtxCode      = "payment_method_code"
)

// BasicAuth checks the HTTP Basic credentials of a notification request
// against the merchant account configured for the :code route parameter.
// Rejected requests get 403 before the body is read.
func BasicAuth(auth ports.MerchantAuthenticator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param(ParamCode)
		username, password, ok := c.Request.BasicAuth()
		if !ok || code == "" {
			log.Warn().Str("code", code).Str("client_ip", c.ClientIP()).Msg("notification without credentials")
			response.Error(c, apperror.ErrInvalidCredentials())
			c.Abort()
			return
		}

		if err := auth.Authenticate(c.Request.Context(), code, username, password); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(CtxCode, code)
		c.Next()
	}
}

// RequestID propagates the X-Request-ID header, generating one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("code", c.Param(ParamCode)).
			Str("request_id", c.GetString(CtxRequestID)).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body size. Reads past the limit fail,
// and the handler turns that into a malformed request.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
