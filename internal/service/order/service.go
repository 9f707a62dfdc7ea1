package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/solttameias/store-api/internal/adapter/repository"
	"github.com/solttameias/store-api/internal/domain/notification"
	"github.com/solttameias/store-api/internal/domain/sale"
	"github.com/solttameias/store-api/internal/domain/user"
	"github.com/solttameias/store-api/pkg/logger"
)

// ErrStatusConflict é retornado quando a venda foi alterada por outra
// operação entre a leitura e a escrita do status
var ErrStatusConflict = errors.New("venda foi alterada por outra operação, tente novamente")

// ProductReader é a visão do catálogo que o serviço de pedidos precisa
type ProductReader interface {
	FindByID(ctx context.Context, id string) (*ProductPrice, error)
}

// ProductPrice carrega os preços vigentes de um produto no momento da venda
type ProductPrice struct {
	ID             string
	Name           string
	RetailPrice    float64
	WholesalePrice float64
	Active         bool
}

// PriceFor retorna o preço unitário de acordo com o tipo de venda
func (p *ProductPrice) PriceFor(saleType sale.Type) float64 {
	if saleType == sale.TypeWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// NotificationSink registra uma notificação para o usuário.
// Implementações não devem bloquear além do necessário; falhas são
// registradas em log e nunca propagadas ao fluxo principal.
type NotificationSink interface {
	Notify(ctx context.Context, userID string, typ notification.Type, title, message, link string, metadata map[string]string) error
}

// EmailSink envia um email transacional
type EmailSink interface {
	Send(to, subject, html string) error
}

// ItemInput é uma linha de produto na criação da venda
type ItemInput struct {
	ProductID string
	Quantity  int
	SaleType  sale.Type
}

// CreateSaleInput contém os dados de entrada para criação de uma venda
type CreateSaleInput struct {
	UserID        string
	Items         []ItemInput
	PaymentMethod sale.PaymentMethod
	Notes         string
	Address       sale.Address
}

// Service orquestra o ciclo de vida das vendas: criação, máquina de
// estados do status e os efeitos colaterais de cada transição
type Service struct {
	sales         sale.Repository
	products      ProductReader
	users         user.Repository
	notifications NotificationSink
	emails        EmailSink
	logger        logger.Logger
}

// NewService cria uma nova instância do serviço de pedidos
func NewService(
	sales sale.Repository,
	products ProductReader,
	users user.Repository,
	notifications NotificationSink,
	emails EmailSink,
	log logger.Logger,
) *Service {
	return &Service{
		sales:         sales,
		products:      products,
		users:         users,
		notifications: notifications,
		emails:        emails,
		logger:        log,
	}
}

// CreateSale cria uma nova venda em status PENDING. Os preços unitários
// são congelados a partir do catálogo no momento da chamada e a venda é
// persistida junto com os itens em uma única transação. Notificação e
// email de confirmação são melhor esforço: falhas são registradas em log
// e não revertem a venda.
func (s *Service) CreateSale(ctx context.Context, in CreateSaleInput) (*sale.Sale, error) {
	if len(in.Items) == 0 {
		return nil, sale.ErrNoItems
	}
	if !in.Address.IsComplete() {
		return nil, sale.ErrIncompleteAddress
	}

	items := make([]*sale.Item, 0, len(in.Items))
	for _, it := range in.Items {
		p, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("produto %s: %w", it.ProductID, err)
		}

		item, err := sale.NewItem(p.ID, it.Quantity, p.PriceFor(it.SaleType), it.SaleType)
		if err != nil {
			return nil, err
		}
		item.ProductName = p.Name
		items = append(items, item)
	}

	newSale, err := sale.NewSale(in.UserID, items, in.PaymentMethod, in.Notes, in.Address)
	if err != nil {
		return nil, err
	}

	// O sufixo aleatório do número não garante unicidade; verificar e
	// regenerar antes de gravar. O índice único da tabela é a última linha
	// de defesa.
	for attempt := 0; attempt < 3; attempt++ {
		exists, err := s.sales.ExistsByNumber(ctx, newSale.Number)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		newSale.Number = sale.NewNumber()
	}

	if err := s.sales.CreateWithItems(ctx, newSale); err != nil {
		return nil, err
	}

	s.dispatchCreated(ctx, newSale)

	return newSale, nil
}

// UpdateSaleStatus atualiza o status de uma venda. Vendas em status final
// (DELIVERED, CANCELED, REFUNDED) não aceitam mais transições. Quando o
// novo status difere do anterior, a notificação e o email da transição são
// disparados em melhor esforço.
func (s *Service) UpdateSaleStatus(ctx context.Context, saleID string, newStatus sale.Status) (*sale.Sale, error) {
	if !newStatus.IsValid() {
		return nil, sale.ErrInvalidStatus
	}

	current, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if current.Status.IsTerminal() {
		return nil, sale.ErrTerminalStatus
	}

	previous := current.Status
	ok, err := s.sales.UpdateStatus(ctx, saleID, previous, newStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Nenhuma linha alterada: ou a venda sumiu ou outra operação
		// trocou o status entre a leitura e a escrita
		if _, err := s.sales.FindByID(ctx, saleID); err != nil {
			return nil, err
		}
		return nil, ErrStatusConflict
	}

	current.Status = newStatus

	if newStatus != previous {
		s.dispatchStatusChange(ctx, current)
	}

	return current, nil
}

// HandlePaymentResult é o ponto de entrada do webhook de pagamento: mapeia
// o status reportado pelo provedor para o status interno da venda. A
// referência externa enviada ao provedor é o próprio ID da venda.
func (s *Service) HandlePaymentResult(ctx context.Context, externalReference, paymentStatus string) (*sale.Sale, error) {
	var target sale.Status
	switch paymentStatus {
	case "approved":
		target = sale.StatusPaid
	case "in_process", "pending":
		target = sale.StatusProcessing
	case "refunded", "charged_back":
		target = sale.StatusRefunded
	case "cancelled", "rejected":
		target = sale.StatusCanceled
	default:
		s.logger.Warn("status de pagamento desconhecido ignorado",
			"status", paymentStatus, "sale_id", externalReference)
		return s.sales.FindByID(ctx, externalReference)
	}

	return s.UpdateSaleStatus(ctx, externalReference, target)
}

// GetSaleByID busca uma venda pelo ID, com itens e dados de produto
func (s *Service) GetSaleByID(ctx context.Context, id string) (*sale.Sale, error) {
	return s.sales.FindByID(ctx, id)
}

// GetUserSales lista as vendas de um usuário
func (s *Service) GetUserSales(ctx context.Context, userID string, limit, offset int) ([]*sale.Sale, error) {
	return s.sales.FindByUser(ctx, userID, limit, offset)
}

// GetAllSales lista todas as vendas (visão administrativa)
func (s *Service) GetAllSales(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	return s.sales.List(ctx, limit, offset)
}

// UpdateSaleNotes atualiza as observações administrativas da venda.
// É a única mutação permitida em vendas com status final.
func (s *Service) UpdateSaleNotes(ctx context.Context, id, notes string) error {
	return s.sales.UpdateNotes(ctx, id, notes)
}

// dispatchCreated dispara os efeitos colaterais da criação da venda
func (s *Service) dispatchCreated(ctx context.Context, newSale *sale.Sale) {
	tpl := createdTemplate(newSale)

	if err := s.notifications.Notify(ctx, newSale.UserID, tpl.Type, tpl.Title, tpl.Message,
		"/pedidos/"+newSale.ID, map[string]string{"sale_number": newSale.Number}); err != nil {
		s.logger.Error("erro ao criar notificação de venda criada",
			"sale_id", newSale.ID, "error", err)
	}

	u, err := s.users.FindByID(ctx, newSale.UserID)
	if err != nil {
		s.logger.Error("erro ao buscar usuário para email de confirmação",
			"user_id", newSale.UserID, "error", err)
		return
	}

	if err := s.emails.Send(u.Email, tpl.Title, confirmationEmailHTML(u.Name, newSale)); err != nil {
		s.logger.Error("erro ao enviar email de confirmação",
			"sale_id", newSale.ID, "error", err)
	}
}

// dispatchStatusChange dispara os efeitos colaterais da transição de status
func (s *Service) dispatchStatusChange(ctx context.Context, updated *sale.Sale) {
	tpl := statusTemplate(updated.Status, updated.Number)

	if err := s.notifications.Notify(ctx, updated.UserID, tpl.Type, tpl.Title, tpl.Message,
		"/pedidos/"+updated.ID, map[string]string{"sale_number": updated.Number}); err != nil {
		s.logger.Error("erro ao criar notificação de status",
			"sale_id", updated.ID, "status", updated.Status, "error", err)
	}

	u, err := s.users.FindByID(ctx, updated.UserID)
	if err != nil {
		s.logger.Error("erro ao buscar usuário para email de status",
			"user_id", updated.UserID, "error", err)
		return
	}

	if err := s.emails.Send(u.Email, tpl.Title, statusEmailHTML(u.Name, updated, tpl)); err != nil {
		s.logger.Error("erro ao enviar email de status",
			"sale_id", updated.ID, "status", updated.Status, "error", err)
	}
}

// IsNotFound verifica se o erro indica que a venda não existe
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrSaleNotFound)
}
