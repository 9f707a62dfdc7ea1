package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/solttameias/store-api/internal/domain/sale"
)

var (
	ErrEmptyCart       = errors.New("carrinho vazio")
	ErrItemNotFound    = errors.New("item não encontrado no carrinho")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior ou igual a 1")
)

// cartTTL é o tempo de vida do carrinho sem atividade
const cartTTL = 7 * 24 * time.Hour

// Item é uma linha do carrinho de compras
type Item struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	SaleType  sale.Type `json:"sale_type"`
}

// Service mantém o carrinho de cada usuário no Redis, um hash por usuário
// indexado por produto
type Service struct {
	rdb *redis.Client
}

// NewService cria um novo serviço de carrinho
func NewService(rdb *redis.Client) *Service {
	return &Service{rdb: rdb}
}

// NewRedisClient cria o cliente Redis a partir de variáveis de ambiente
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	return rdb, nil
}

// Add adiciona um item ao carrinho do usuário, somando a quantidade se o
// produto já estiver presente
func (s *Service) Add(ctx context.Context, userID string, item Item) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.SaleType == "" {
		item.SaleType = sale.TypeRetail
	}

	key := cartKey(userID)

	existing, err := s.rdb.HGet(ctx, key, item.ProductID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("erro ao ler carrinho: %w", err)
	}
	if err == nil {
		var current Item
		if err := json.Unmarshal([]byte(existing), &current); err != nil {
			return fmt.Errorf("erro ao decodificar item do carrinho: %w", err)
		}
		item.Quantity += current.Quantity
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("erro ao serializar item do carrinho: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, item.ProductID, data)
	pipe.Expire(ctx, key, cartTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erro ao gravar carrinho: %w", err)
	}

	return nil
}

// Update substitui a quantidade de um item do carrinho
func (s *Service) Update(ctx context.Context, userID string, item Item) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	key := cartKey(userID)

	exists, err := s.rdb.HExists(ctx, key, item.ProductID).Result()
	if err != nil {
		return fmt.Errorf("erro ao ler carrinho: %w", err)
	}
	if !exists {
		return ErrItemNotFound
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("erro ao serializar item do carrinho: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, item.ProductID, data)
	pipe.Expire(ctx, key, cartTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erro ao gravar carrinho: %w", err)
	}

	return nil
}

// Remove retira um item do carrinho
func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	removed, err := s.rdb.HDel(ctx, cartKey(userID), productID).Result()
	if err != nil {
		return fmt.Errorf("erro ao remover item do carrinho: %w", err)
	}
	if removed == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Clear esvazia o carrinho do usuário
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("erro ao limpar carrinho: %w", err)
	}
	return nil
}

// Get retorna todos os itens do carrinho do usuário
func (s *Service) Get(ctx context.Context, userID string) ([]Item, error) {
	entries, err := s.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler carrinho: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, raw := range entries {
		var item Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("erro ao decodificar item do carrinho: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func cartKey(userID string) string {
	return "cart:" + userID
}
