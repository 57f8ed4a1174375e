package event

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/database"
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/controller"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/repository"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/router"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes.
// The repository is returned so the availability module can query events.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, reminders service.ReminderScheduler) repository.EventRepositoryInterface {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, reminders)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
	return repo
}
