package middleware

import (
	"net/http"
	"strings"

	"github.com/dancoopper/COMP3074-MobileApp/core/cache"
	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/controller"
	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the parsed claims under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "authorization header must be a Bearer token")
			}
			token := parts[1]

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
				return controller.NewErrorResponse(http.StatusInternalServerError, errors.ErrInternalServer, "failed to check token blacklist")
			}
			if blacklisted {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "token is blacklisted")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "token scope is not valid for this endpoint")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
