package dto

import (
	"time"

	"github.com/solttameias/store-api/internal/domain/notification"
)

// NotificationResponse representa uma notificação nas respostas da API
type NotificationResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Link      string            `json:"link"`
	Metadata  map[string]string `json:"metadata"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

// NotificationListResponse representa a lista de notificações do usuário
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

// ToNotificationResponse converte a entidade para o DTO de resposta
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Metadata:  n.Metadata,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converte a lista de entidades para o DTO de resposta
func ToNotificationListResponse(notifications []*notification.Notification, unreadCount int) NotificationListResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, ToNotificationResponse(n))
	}

	return NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unreadCount,
	}
}
