package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	"github.com/kirimkilat/kirimkilat/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// NewAPIKeyMiddleware builds an API key validator over the configured service keys.
// Callers name the services allowed to reach the guarded route group.
func NewAPIKeyMiddleware(cfg models.APIKeyConfig) func(allowedServices ...string) echo.MiddlewareFunc {
	serviceKeys := map[string]string{
		"order-service": cfg.OrderService,
		"admin":         cfg.Admin,
	}

	return func(allowedServices ...string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				apiKey := c.Request().Header.Get(APIKeyHeader)
				if apiKey == "" {
					return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
				}

				// Check if the API key belongs to any of the allowed services
				validKey := false
				for _, service := range allowedServices {
					if serviceKeys[service] != "" && strings.EqualFold(apiKey, serviceKeys[service]) {
						validKey = true
						break
					}
				}

				if !validKey {
					return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
				}

				return next(c)
			}
		}
	}
}
