package melhorenvio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://melhorenvio.com.br/api/v2/me"

// APIError representa uma resposta de erro do Melhor Envio
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("melhor envio retornou status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized verifica se o erro indica token inválido ou expirado
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Shipment representa um envio na conta do Melhor Envio. O campo OrderID
// carrega o ID da venda usado como referência na criação do envio. O
// código de rastreio só fica disponível depois que a etiqueta é gerada,
// de forma assíncrona.
type Shipment struct {
	ID                string `json:"id"`
	Protocol          string `json:"protocol"`
	OrderID           string `json:"order_id"`
	Status            string `json:"status"`
	Tracking          string `json:"tracking"`
	AuthorizationCode string `json:"authorization_code"`
	GeneratedAt       string `json:"generated_at"`
}

// HasTracking verifica se o envio já possui código de rastreio
func (s Shipment) HasTracking() bool {
	return s.Tracking != "" || s.AuthorizationCode != ""
}

// CartRequest contém os dados para adicionar um envio ao carrinho do
// Melhor Envio
type CartRequest struct {
	OrderID   string  `json:"order_id"`
	Service   int     `json:"service"`
	ToName    string  `json:"to_name"`
	ToAddress string  `json:"to_address"`
	ToNumber  string  `json:"to_number"`
	ToCity    string  `json:"to_city"`
	ToState   string  `json:"to_state"`
	ToZipCode string  `json:"to_zip_code"`
	Insurance float64 `json:"insurance_value"`
	Weight    float64 `json:"weight"`
}

// CartItem é a resposta do carrinho para um envio adicionado
type CartItem struct {
	ID      string  `json:"id"`
	OrderID string  `json:"order_id"`
	Price   float64 `json:"price"`
	Status  string  `json:"status"`
}

// PrintResult contém a URL do documento de impressão das etiquetas
type PrintResult struct {
	URL string `json:"url"`
}

// Client é o cliente HTTP do Melhor Envio
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient cria um novo cliente do Melhor Envio
func NewClient(token string) *Client {
	baseURL := os.Getenv("MELHOR_ENVIO_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewClientFromEnv cria um cliente usando o token da variável de ambiente
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("MELHOR_ENVIO_TOKEN"))
}

// AddToCart adiciona um envio ao carrinho do Melhor Envio
func (c *Client) AddToCart(ctx context.Context, req CartRequest) (*CartItem, error) {
	var item CartItem
	if err := c.do(ctx, http.MethodPost, "/cart", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Checkout compra os envios do carrinho identificados pelos pedidos
func (c *Client) Checkout(ctx context.Context, orderIDs []string) error {
	body := map[string][]string{"orders": orderIDs}
	return c.do(ctx, http.MethodPost, "/shipment/checkout", body, nil)
}

// GenerateLabels solicita a geração das etiquetas dos pedidos. A chamada
// retorna antes de o código de rastreio existir; o resultado deve ser
// consultado depois via ListShipments.
func (c *Client) GenerateLabels(ctx context.Context, orderIDs []string) error {
	body := map[string][]string{"orders": orderIDs}
	return c.do(ctx, http.MethodPost, "/shipment/generate", body, nil)
}

// PrintLabels retorna a URL de impressão das etiquetas dos pedidos
func (c *Client) PrintLabels(ctx context.Context, orderIDs []string, mode string) (*PrintResult, error) {
	body := map[string]interface{}{
		"mode":   mode,
		"orders": orderIDs,
	}

	var result PrintResult
	if err := c.do(ctx, http.MethodPost, "/shipment/print", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListShipments lista os envios da conta com o estado atual de etiqueta e
// rastreio
func (c *Client) ListShipments(ctx context.Context) ([]Shipment, error) {
	var response struct {
		Data []Shipment `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// CancelShipment cancela um envio
func (c *Client) CancelShipment(ctx context.Context, orderID string) error {
	body := map[string]interface{}{
		"order": map[string]interface{}{
			"id":          orderID,
			"reason_id":   2,
			"description": "Cancelado pela loja",
		},
	}
	return c.do(ctx, http.MethodPost, "/shipment/cancel", body, nil)
}

// do executa uma requisição autenticada contra a API do Melhor Envio
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar requisição: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar melhor envio: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("erro ao decodificar resposta: %w", err)
		}
	}

	return nil
}
