package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solttameias/store-api/internal/domain/notification"
)

// ErrNotificationNotFound é retornado quando a notificação não existe
var ErrNotificationNotFound = errors.New("notificação não encontrada")

// NotificationRepository implementa a interface notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository cria uma nova instância de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{
		db: db,
	}
}

// Create implementa notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	metadata := n.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("erro ao converter metadados para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO notifications (
			id, user_id, type, title, message, link, metadata, read, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.Link, metadataJSON,
		n.Read, n.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar notificação: %w", err)
	}

	return nil
}

// FindByUser implementa notification.Repository.FindByUser
func (r *NotificationRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, title, message, link, metadata, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		var metadataJSON []byte

		err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Link,
			&metadataJSON, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler notificação: %w", err)
		}

		if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
			return nil, fmt.Errorf("erro ao converter metadados: %w", err)
		}

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return notifications, nil
}

// MarkRead implementa notification.Repository.MarkRead
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead implementa notification.Repository.MarkAllRead
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificações como lidas: %w", err)
	}

	return nil
}

// Delete implementa notification.Repository.Delete
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM notifications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir notificação: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// CountUnread implementa notification.Repository.CountUnread
func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE",
		userID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar notificações: %w", err)
	}

	return count, nil
}
