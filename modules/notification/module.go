package notification

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/modules/notification/service"
	"github.com/dancoopper/COMP3074-MobileApp/modules/notification/worker"
)

// Init builds the reminder scheduler and its background worker.
// Both connect to the same Redis instance used for task queueing.
func Init(cfg config.RedisConfig) (*service.NotificationService, *worker.Worker) {
	svc := service.NewNotificationService(cfg)
	w := worker.NewWorker(cfg)
	return svc, w
}
