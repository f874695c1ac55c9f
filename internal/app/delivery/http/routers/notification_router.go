package routers

import (
	"lifelink-service/internal/app/delivery/http/middlewares"
	"lifelink-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.With(middlewares.Authenticate).Get("/", notificationController.GetOwnNotifications)
	router.With(middlewares.Authenticate).Get("/unread-count", notificationController.GetUnreadCount)
	router.With(middlewares.Authenticate).Patch("/{notificationID}/read", notificationController.MarkRead)
}
