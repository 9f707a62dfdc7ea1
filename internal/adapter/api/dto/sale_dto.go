package dto

import (
	"time"

	"github.com/solttameias/store-api/internal/domain/sale"
)

// AddressRequest representa o endereço de entrega informado no checkout
type AddressRequest struct {
	ZipCode    string `json:"zip_code" binding:"required"`
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement"`
	District   string `json:"district" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// ToAddress converte o DTO para o value object de domínio
func (a AddressRequest) ToAddress() sale.Address {
	return sale.Address{
		ZipCode:    a.ZipCode,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
	}
}

// SaleItemResponse representa um item de venda nas respostas da API
type SaleItemResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	SaleType     string  `json:"sale_type"`
}

// SaleResponse representa uma venda nas respostas da API
type SaleResponse struct {
	ID            string             `json:"id"`
	Number        string             `json:"number"`
	UserID        string             `json:"user_id"`
	Status        string             `json:"status"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
	Address       sale.Address       `json:"address"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	CompletedAt   *time.Time         `json:"completed_at"`
	CanceledAt    *time.Time         `json:"canceled_at"`
}

// SaleListResponse representa a lista paginada de vendas
type SaleListResponse struct {
	Sales      []SaleResponse `json:"sales"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

// UpdateSaleStatusRequest representa a troca de status de uma venda
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSaleNotesRequest representa a atualização das observações da venda
type UpdateSaleNotesRequest struct {
	Notes string `json:"notes"`
}

// ToSaleResponse converte a entidade para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal,
			Discount:     item.Discount,
			Total:        item.Total,
			SaleType:     string(item.SaleType),
		})
	}

	return SaleResponse{
		ID:            s.ID,
		Number:        s.Number,
		UserID:        s.UserID,
		Status:        string(s.Status),
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Notes:         s.Notes,
		Address:       s.Address,
		Items:         items,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		CompletedAt:   s.CompletedAt,
		CanceledAt:    s.CanceledAt,
	}
}

// ToSaleListResponse converte a lista de entidades para o DTO de resposta
func ToSaleListResponse(sales []*sale.Sale, totalCount, page, pageSize int) SaleListResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, ToSaleResponse(s))
	}

	return SaleListResponse{
		Sales:      responses,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}
