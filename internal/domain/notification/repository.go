package notification

import (
	"context"
)

// Repository define a interface para operações de repositório de notificações
type Repository interface {
	// Create cria uma nova notificação
	Create(ctx context.Context, n *Notification) error

	// FindByUser lista as notificações de um usuário, mais recentes primeiro
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]*Notification, error)

	// MarkRead marca uma notificação como lida
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marca todas as notificações do usuário como lidas
	MarkAllRead(ctx context.Context, userID string) error

	// Delete remove uma notificação
	Delete(ctx context.Context, id string) error

	// CountUnread conta as notificações não lidas do usuário
	CountUnread(ctx context.Context, userID string) (int, error)
}
