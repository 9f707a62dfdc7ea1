package order

import (
	"context"

	"github.com/solttameias/store-api/internal/domain/notification"
	"github.com/solttameias/store-api/internal/domain/product"
)

// repositorySink adapta notification.Repository à interface NotificationSink
type repositorySink struct {
	repo notification.Repository
}

// NewRepositorySink cria um NotificationSink que persiste as notificações
// através do repositório
func NewRepositorySink(repo notification.Repository) NotificationSink {
	return &repositorySink{repo: repo}
}

func (s *repositorySink) Notify(ctx context.Context, userID string, typ notification.Type, title, message, link string, metadata map[string]string) error {
	return s.repo.Create(ctx, notification.New(userID, typ, title, message, link, metadata))
}

// catalogReader adapta product.Repository à interface ProductReader
type catalogReader struct {
	repo product.Repository
}

// NewCatalogReader cria um ProductReader sobre o repositório de produtos
func NewCatalogReader(repo product.Repository) ProductReader {
	return &catalogReader{repo: repo}
}

func (c *catalogReader) FindByID(ctx context.Context, id string) (*ProductPrice, error) {
	p, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductPrice{
		ID:             p.ID,
		Name:           p.Name,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Active:         p.Active,
	}, nil
}
