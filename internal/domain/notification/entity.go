package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type representa o tipo de evento que originou a notificação
type Type string

const (
	TypeSaleCreated    Type = "SALE_CREATED"    // Pedido criado
	TypeSaleProcessing Type = "SALE_PROCESSING" // Pagamento em processamento
	TypeSalePaid       Type = "SALE_PAID"       // Pagamento aprovado
	TypeSaleShipped    Type = "SALE_SHIPPED"    // Pedido enviado
	TypeSaleDelivered  Type = "SALE_DELIVERED"  // Pedido entregue
	TypeSaleCanceled   Type = "SALE_CANCELED"   // Pedido cancelado
	TypeSaleRefunded   Type = "SALE_REFUNDED"   // Pedido reembolsado
	TypeSaleUpdated    Type = "SALE_UPDATED"    // Atualização genérica
)

// Notification representa um evento registrado para um usuário
type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Type      Type              `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Link      string            `json:"link"`
	Metadata  map[string]string `json:"metadata"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

// New cria uma nova notificação não lida
func New(userID string, typ Type, title, message, link string, metadata map[string]string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Link:      link,
		Metadata:  metadata,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
