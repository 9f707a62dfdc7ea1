package dto

import (
	"github.com/solttameias/store-api/internal/domain/sale"
	"github.com/solttameias/store-api/internal/service/cart"
)

// CartItemRequest representa um item adicionado ou atualizado no carrinho
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
	SaleType  string `json:"sale_type" binding:"omitempty,oneof=RETAIL WHOLESALE"`
}

// ToCartItem converte o DTO para o item de carrinho do serviço
func (r CartItemRequest) ToCartItem() cart.Item {
	saleType := sale.Type(r.SaleType)
	if saleType == "" {
		saleType = sale.TypeRetail
	}

	return cart.Item{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		SaleType:  saleType,
	}
}

// CartResponse representa o carrinho do usuário
type CartResponse struct {
	Items []cart.Item `json:"items"`
}
