package sale

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems           = errors.New("venda deve conter ao menos um item")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior ou igual a 1")
	ErrInvalidUnitPrice  = errors.New("preço unitário não pode ser negativo")
	ErrIncompleteAddress = errors.New("endereço de entrega incompleto")
	ErrInvalidStatus     = errors.New("status de venda inválido")
	ErrTerminalStatus    = errors.New("venda em status final não pode ser alterada")
)

// Status representa o estado de uma venda no ciclo de vida do pedido
type Status string

const (
	StatusPending    Status = "PENDING"    // Aguardando pagamento
	StatusProcessing Status = "PROCESSING" // Pagamento em processamento
	StatusPaid       Status = "PAID"       // Pagamento aprovado
	StatusShipped    Status = "SHIPPED"    // Enviado à transportadora
	StatusDelivered  Status = "DELIVERED"  // Entregue ao cliente
	StatusCanceled   Status = "CANCELED"   // Cancelada
	StatusRefunded   Status = "REFUNDED"   // Reembolsada
)

// IsValid verifica se o status é um dos valores conhecidos
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid, StatusShipped,
		StatusDelivered, StatusCanceled, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal verifica se o status é final (nenhuma transição é permitida a partir dele)
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled || s == StatusRefunded
}

// PaymentMethod define a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentMercadoPago PaymentMethod = "MERCADO_PAGO"
	PaymentPix         PaymentMethod = "PIX"
	PaymentBoleto      PaymentMethod = "BOLETO"
)

// Type define o tipo de venda de um item
type Type string

const (
	TypeRetail    Type = "RETAIL"    // Varejo
	TypeWholesale Type = "WHOLESALE" // Atacado
)

// Address é o retrato do endereço de entrega no momento da venda.
// É uma cópia, não uma referência viva ao endereço do usuário.
type Address struct {
	ZipCode    string `json:"zip_code"`   // CEP
	Street     string `json:"street"`     // Logradouro
	Number     string `json:"number"`     // Número
	Complement string `json:"complement"` // Complemento (opcional)
	District   string `json:"district"`   // Bairro
	City       string `json:"city"`       // Cidade
	State      string `json:"state"`      // Estado
	Country    string `json:"country"`    // País
}

// IsComplete verifica se os campos obrigatórios do endereço estão preenchidos
func (a Address) IsComplete() bool {
	return a.ZipCode != "" && a.Street != "" && a.Number != "" &&
		a.District != "" && a.City != "" && a.State != "" && a.Country != ""
}

// Item representa uma linha de produto dentro de uma venda
type Item struct {
	ID           string  `json:"id"`
	SaleID       string  `json:"sale_id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`  // Preenchido na leitura (join)
	ProductImage string  `json:"product_image"` // Preenchido na leitura (join)
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"` // Preço no momento da venda, imutável
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	SaleType     Type    `json:"sale_type"`
}

// NewItem cria um novo item de venda calculando subtotal e total
func NewItem(productID string, quantity int, unitPrice float64, saleType Type) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}

	subtotal := unitPrice * float64(quantity)
	return &Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
		Discount:  0,
		Total:     subtotal,
		SaleType:  saleType,
	}, nil
}

// Sale representa uma compra de um cliente
type Sale struct {
	ID            string        `json:"id"`
	Number        string        `json:"number"` // Identificador externo legível
	UserID        string        `json:"user_id"`
	Status        Status        `json:"status"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
	Address       Address       `json:"address"`
	Items         []*Item       `json:"items"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CompletedAt   *time.Time    `json:"completed_at"`
	CanceledAt    *time.Time    `json:"canceled_at"`
}

// NewSale cria uma nova venda em status PENDING calculando os totais a partir dos itens
func NewSale(userID string, items []*Item, paymentMethod PaymentMethod, notes string, address Address) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !address.IsComplete() {
		return nil, ErrIncompleteAddress
	}

	s := &Sale{
		ID:            uuid.New().String(),
		Number:        NewNumber(),
		UserID:        userID,
		Status:        StatusPending,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		Address:       address,
		Items:         items,
	}

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	for _, item := range items {
		item.SaleID = s.ID
		s.Subtotal += item.Total
	}
	s.Discount = 0
	s.Total = s.Subtotal - s.Discount

	return s, nil
}

const numberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewNumber gera um número de venda legível no formato AAAAMMDD-XXXXX.
// O sufixo aleatório não garante unicidade sozinho; o chamador deve
// verificar colisão contra o repositório antes de persistir.
func NewNumber() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read em crypto/rand não falha em plataformas suportadas
		panic(err)
	}
	for i, b := range buf {
		buf[i] = numberAlphabet[int(b)%len(numberAlphabet)]
	}
	return time.Now().UTC().Format("20060102") + "-" + string(buf)
}
