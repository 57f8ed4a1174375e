package router

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

// ProfileRouter handles profile routes
type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

// NewProfileRouter creates a new router
func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{
		ProfileController: profileController,
	}
}

// Setup registers profile routes
func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	profileRoutes := v1.Group("/profile", mw.AuthMiddleware())

	profileRoutes.GET("", r.ProfileController.GetProfile)
	profileRoutes.PUT("", r.ProfileController.UpdateProfile)
	profileRoutes.POST("/avatar", r.ProfileController.UploadAvatar)
}
