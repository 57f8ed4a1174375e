package availability

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/cache"
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/controller"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/router"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/service"
	authrepo "github.com/dancoopper/COMP3074-MobileApp/modules/auth/repository"
	eventrepo "github.com/dancoopper/COMP3074-MobileApp/modules/event/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes
func Init(e *echo.Echo, eventRepo eventrepo.EventRepositoryInterface, authRepo authrepo.AuthRepositoryInterface, c cache.Cache, mw *middleware.Middleware) {
	svc := service.NewAvailabilityService(eventRepo, authRepo, c)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
}
