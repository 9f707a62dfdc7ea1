package dto

import (
	"math"

	validatorv10 "github.com/go-playground/validator/v10"
)

// CheckoutItemRequest é uma linha de produto no checkout
type CheckoutItemRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid4"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	SaleType  string  `json:"sale_type" validate:"omitempty,oneof=RETAIL WHOLESALE"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"` // Preço exibido ao cliente, conferido no servidor
}

// CheckoutRequest representa o pedido de checkout do cliente. Quando a
// lista de itens vem vazia, o servidor usa o carrinho do usuário.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" validate:"omitempty,dive"`
	PaymentMethod string                `json:"payment_method" validate:"omitempty,oneof=MERCADO_PAGO PIX BOLETO"`
	Notes         string                `json:"notes"`
	Address       AddressRequest        `json:"address"`
	DisplayTotal  float64               `json:"display_total" validate:"gte=0"`
}

// CheckoutResponse representa a resposta do checkout: a venda criada e a
// URL de redirecionamento do provedor de pagamento
type CheckoutResponse struct {
	Sale        SaleResponse `json:"sale"`
	RedirectURL string       `json:"redirect_url"`
}

// NewCheckoutValidator retorna um validador com a validação estrutural do
// checkout registrada
func NewCheckoutValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})
	return v
}

// checkoutStructValidation confere que o total exibido ao cliente bate com
// a soma dos itens (comparação em centavos para evitar ruído de ponto
// flutuante). O preço autoritativo continua sendo o do catálogo no
// servidor; esta checagem só rejeita carrinhos montados de forma
// inconsistente no cliente.
func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	if req.DisplayTotal == 0 {
		return
	}

	var sum float64
	for _, it := range req.Items {
		sum += float64(it.Quantity) * it.UnitPrice
	}

	sumCents := int(math.Round(sum * 100))
	totalCents := int(math.Round(req.DisplayTotal * 100))
	if sumCents != totalCents {
		sl.ReportError(req.DisplayTotal, "display_total", "DisplayTotal", "total_match_items", "")
	}
}
