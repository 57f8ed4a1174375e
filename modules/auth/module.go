package auth

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/cache"
	"github.com/dancoopper/COMP3074-MobileApp/core/database"
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/controller"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/repository"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/router"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes.
// The repository is returned so other modules can resolve users.
func Init(e *echo.Echo, db database.Database, c cache.Cache, mw *middleware.Middleware) repository.AuthRepositoryInterface {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
	return repo
}
