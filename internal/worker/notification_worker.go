package worker

import (
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/service"
)

// StartNotificationWorker subscribes the notification sink to the café's
// domain events. Delivery runs synchronously on the publishing request.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		logger.Warn("notification worker skipped, no notification service configured")
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker registered")
}
