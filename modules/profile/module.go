package profile

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/core/storage"
	authrepo "github.com/dancoopper/COMP3074-MobileApp/modules/auth/repository"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile/controller"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile/router"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the profile module and registers routes
func Init(e *echo.Echo, authRepo authrepo.AuthRepositoryInterface, s storage.Storage, mw *middleware.Middleware) {
	svc := service.NewProfileService(authRepo, s)
	ctrl := controller.NewProfileController(svc)
	rtr := router.NewProfileRouter(ctrl)

	rtr.Setup(e, mw)
}
