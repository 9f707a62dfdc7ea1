package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptySKU     = errors.New("SKU não pode ser vazio")
	ErrInvalidPrice = errors.New("preço não pode ser negativo")
)

// Product representa um produto do catálogo
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SKU            string    `json:"sku"`
	RetailPrice    float64   `json:"retail_price"`    // Preço de varejo
	WholesalePrice float64   `json:"wholesale_price"` // Preço de atacado
	ImageURL       string    `json:"image_url"`
	Stock          int       `json:"stock"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto ativo
func NewProduct(name, description, sku string, retailPrice, wholesalePrice float64, imageURL string, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if retailPrice < 0 || wholesalePrice < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:             uuid.New().String(),
		Name:           name,
		Description:    description,
		SKU:            sku,
		RetailPrice:    retailPrice,
		WholesalePrice: wholesalePrice,
		ImageURL:       imageURL,
		Stock:          stock,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// PriceFor retorna o preço unitário de acordo com o tipo de venda
func (p *Product) PriceFor(wholesale bool) float64 {
	if wholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// Update atualiza os dados do produto
func (p *Product) Update(name, description string, retailPrice, wholesalePrice float64, imageURL string, stock int, active bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if retailPrice < 0 || wholesalePrice < 0 {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Description = description
	p.RetailPrice = retailPrice
	p.WholesalePrice = wholesalePrice
	p.ImageURL = imageURL
	p.Stock = stock
	p.Active = active
	p.UpdatedAt = time.Now()

	return nil
}
