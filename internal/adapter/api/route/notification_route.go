package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterNotificationRoutes registra as rotas de notificações
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController) {
	notifications := r.Group("/notifications")
	notifications.Use(auth.JWTAuthMiddleware())
	{
		notifications.GET("", notificationController.List)
		notifications.PATCH("/read-all", notificationController.MarkAllRead)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
		notifications.DELETE("/:id", notificationController.Delete)
	}
}
