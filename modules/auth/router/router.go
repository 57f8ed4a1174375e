package router

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter handles authentication routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

// NewAuthRouter creates a new router
func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers authentication routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	authRoutes := v1.Group("/auth")

	authRoutes.POST("/register", r.AuthController.Register)
	authRoutes.POST("/login", r.AuthController.Login)

	// Protected
	authRoutes.POST("/logout", r.AuthController.Logout, mw.AuthMiddleware())
	authRoutes.GET("/me", r.AuthController.Me, mw.AuthMiddleware())
}
