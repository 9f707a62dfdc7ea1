package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solttameias/store-api/internal/domain/sale"
	"github.com/solttameias/store-api/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrSaleDatabaseError = errors.New("erro de banco de dados")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// CreateWithItems implementa sale.Repository.CreateWithItems.
// A venda e todos os itens são gravados em uma única transação: ou tudo
// é persistido ou nada fica visível.
func (r *SaleRepository) CreateWithItems(ctx context.Context, s *sale.Sale) error {
	address, err := json.Marshal(s.Address)
	if err != nil {
		return fmt.Errorf("erro ao converter endereço para JSON: %w", err)
	}

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales (
				id, number, user_id, status, subtotal, discount, total,
				payment_method, notes, address, created_at, updated_at,
				completed_at, canceled_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
			)`,
			s.ID, s.Number, s.UserID, s.Status, s.Subtotal, s.Discount,
			s.Total, s.PaymentMethod, s.Notes, address, s.CreatedAt,
			s.UpdatedAt, s.CompletedAt, s.CanceledAt)
		if err != nil {
			return fmt.Errorf("erro ao criar venda: %w", err)
		}

		for _, item := range s.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO sale_items (
					id, sale_id, product_id, quantity, unit_price,
					subtotal, discount, total, sale_type
				) VALUES (
					$1, $2, $3, $4, $5, $6, $7, $8, $9
				)`,
				item.ID, item.SaleID, item.ProductID, item.Quantity,
				item.UnitPrice, item.Subtotal, item.Discount, item.Total,
				item.SaleType)
			if err != nil {
				return fmt.Errorf("erro ao criar item da venda: %w", err)
			}
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale
	var addressJSON []byte

	err := r.db.QueryRow(ctx,
		`SELECT
			id, number, user_id, status, subtotal, discount, total,
			payment_method, notes, address, created_at, updated_at,
			completed_at, canceled_at
		FROM sales WHERE id = $1`,
		id).Scan(
		&s.ID, &s.Number, &s.UserID, &s.Status, &s.Subtotal, &s.Discount,
		&s.Total, &s.PaymentMethod, &s.Notes, &addressJSON, &s.CreatedAt,
		&s.UpdatedAt, &s.CompletedAt, &s.CanceledAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &s.Address); err != nil {
		return nil, fmt.Errorf("erro ao converter endereço: %w", err)
	}

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// FindByUser implementa sale.Repository.FindByUser
func (r *SaleRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			id, number, user_id, status, subtotal, discount, total,
			payment_method, notes, address, created_at, updated_at,
			completed_at, canceled_at
		FROM sales
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			id, number, user_id, status, subtotal, discount, total,
			payment_method, notes, address, created_at, updated_at,
			completed_at, canceled_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// UpdateStatus implementa sale.Repository.UpdateStatus.
// A troca é condicionada ao status atual (compare-and-swap); duas
// atualizações concorrentes sobre a mesma venda nunca se sobrescrevem
// silenciosamente.
func (r *SaleRepository) UpdateStatus(ctx context.Context, id string, from, to sale.Status) (bool, error) {
	now := time.Now()

	var completedAt, canceledAt interface{}
	if to == sale.StatusDelivered {
		completedAt = now
	}
	if to == sale.StatusCanceled || to == sale.StatusRefunded {
		canceledAt = now
	}

	result, err := r.db.Exec(ctx,
		`UPDATE sales SET
			status = $1,
			updated_at = $2,
			completed_at = COALESCE($3, completed_at),
			canceled_at = COALESCE($4, canceled_at)
		WHERE id = $5 AND status = $6`,
		to, now, completedAt, canceledAt, id, from)

	if err != nil {
		return false, fmt.Errorf("erro ao atualizar status da venda: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// UpdateNotes implementa sale.Repository.UpdateNotes
func (r *SaleRepository) UpdateNotes(ctx context.Context, id string, notes string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE sales SET notes = $1, updated_at = $2 WHERE id = $3",
		notes, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar observações da venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// ExistsByNumber implementa sale.Repository.ExistsByNumber
func (r *SaleRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM sales WHERE number = $1)",
		number).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar número da venda: %w", err)
	}

	return exists, nil
}

// CountByUser implementa sale.Repository.CountByUser
func (r *SaleRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM sales WHERE user_id = $1",
		userID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// findItems busca os itens de uma venda com os dados de produto necessários
// para exibição do recibo
func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]*sale.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			i.id, i.sale_id, i.product_id, p.name, p.image_url,
			i.quantity, i.unit_price, i.subtotal, i.discount, i.total,
			i.sale_type
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]*sale.Item, 0)
	for rows.Next() {
		var item sale.Item
		err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.ProductImage, &item.Quantity, &item.UnitPrice,
			&item.Subtotal, &item.Discount, &item.Total, &item.SaleType)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

// scanSaleRows é um método auxiliar para processar resultados de consultas
// que retornam múltiplas vendas
func (r *SaleRepository) scanSaleRows(ctx context.Context, rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		var s sale.Sale
		var addressJSON []byte

		err := rows.Scan(
			&s.ID, &s.Number, &s.UserID, &s.Status, &s.Subtotal, &s.Discount,
			&s.Total, &s.PaymentMethod, &s.Notes, &addressJSON, &s.CreatedAt,
			&s.UpdatedAt, &s.CompletedAt, &s.CanceledAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		if err := json.Unmarshal(addressJSON, &s.Address); err != nil {
			return nil, fmt.Errorf("erro ao converter endereço: %w", err)
		}

		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	// Carregar itens após o cursor ser consumido, uma venda por vez
	for _, s := range sales {
		items, err := r.findItems(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}

	return sales, nil
}
