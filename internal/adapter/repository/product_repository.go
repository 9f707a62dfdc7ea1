package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solttameias/store-api/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateSKU = errors.New("produto com mesmo SKU já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, description, sku, retail_price, wholesale_price,
			image_url, stock, active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		p.ID, p.Name, p.Description, p.SKU, p.RetailPrice, p.WholesalePrice,
		p.ImageURL, p.Stock, p.Active, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateSKU
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, description, sku, retail_price, wholesale_price,
			image_url, stock, active, created_at, updated_at
		FROM products WHERE id = $1`,
		id).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.RetailPrice,
		&p.WholesalePrice, &p.ImageURL, &p.Stock, &p.Active,
		&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// FindBySKU implementa product.Repository.FindBySKU
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, description, sku, retail_price, wholesale_price,
			image_url, stock, active, created_at, updated_at
		FROM products WHERE sku = $1`,
		sku).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.RetailPrice,
		&p.WholesalePrice, &p.ImageURL, &p.Stock, &p.Active,
		&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*product.Product, error) {
	query := `SELECT
			id, name, description, sku, retail_price, wholesale_price,
			image_url, stock, active, created_at, updated_at
		FROM products `
	if onlyActive {
		query += "WHERE active = TRUE "
	}
	query += "ORDER BY name ASC LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.SKU, &p.RetailPrice,
			&p.WholesalePrice, &p.ImageURL, &p.Stock, &p.Active,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, description = $2, retail_price = $3,
			wholesale_price = $4, image_url = $5, stock = $6,
			active = $7, updated_at = $8
		WHERE id = $9`,
		p.Name, p.Description, p.RetailPrice, p.WholesalePrice,
		p.ImageURL, p.Stock, p.Active, p.UpdatedAt, p.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, onlyActive bool) (int, error) {
	query := "SELECT COUNT(*) FROM products"
	if onlyActive {
		query += " WHERE active = TRUE"
	}

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}
