package dto

import (
	"time"

	"github.com/solttameias/store-api/internal/domain/product"
)

// ProductRequest representa os dados para criação/atualização de um produto
type ProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	SKU            string  `json:"sku"`
	RetailPrice    float64 `json:"retail_price" binding:"gte=0"`
	WholesalePrice float64 `json:"wholesale_price" binding:"gte=0"`
	ImageURL       string  `json:"image_url"`
	Stock          int     `json:"stock" binding:"gte=0"`
	Active         *bool   `json:"active"`
}

// ProductResponse representa um produto nas respostas da API
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SKU            string    `json:"sku"`
	RetailPrice    float64   `json:"retail_price"`
	WholesalePrice float64   `json:"wholesale_price"`
	ImageURL       string    `json:"image_url"`
	Stock          int       `json:"stock"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductListResponse representa a lista paginada de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// ToProductResponse converte a entidade para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SKU:            p.SKU,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		ImageURL:       p.ImageURL,
		Stock:          p.Stock,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductListResponse converte a lista de entidades para o DTO de resposta
func ToProductListResponse(products []*product.Product, totalCount, page, pageSize int) ProductListResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}

	return ProductListResponse{
		Products:   responses,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}
