package router

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles availability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

// NewAvailabilityRouter creates a new router
func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	availRoutes := v1.Group("/availability", mw.AuthMiddleware())

	availRoutes.POST("/parse", r.AvailabilityController.ParseText)
	availRoutes.GET("/slots", r.AvailabilityController.GetDaySlots)
	availRoutes.POST("/booking", r.AvailabilityController.CheckBooking)
	availRoutes.POST("/share", r.AvailabilityController.CreateShare)

	// Public share link, outside the versioned API
	e.GET("/s/:slug", r.AvailabilityController.PublicShare)
}
