package dto

import (
	"github.com/solttameias/store-api/internal/gateway/melhorenvio"
)

// BuyShipmentRequest representa a compra de frete para um conjunto de vendas
type BuyShipmentRequest struct {
	SaleIDs []string `json:"sale_ids" binding:"required,min=1"`
	Service int      `json:"service" binding:"required"`
}

// GenerateLabelsRequest representa o pedido de geração de etiquetas
type GenerateLabelsRequest struct {
	SaleIDs []string `json:"sale_ids" binding:"required,min=1"`
}

// PrintLabelsRequest representa o pedido de impressão de etiquetas
type PrintLabelsRequest struct {
	SaleIDs []string `json:"sale_ids" binding:"required,min=1"`
	Mode    string   `json:"mode"`
}

// ShipmentResponse representa um envio do provedor nas respostas da API,
// enriquecido com os dados da venda correspondente quando existem
type ShipmentResponse struct {
	ID                string `json:"id"`
	SaleID            string `json:"sale_id"`
	SaleNumber        string `json:"sale_number,omitempty"`
	SaleStatus        string `json:"sale_status,omitempty"`
	Protocol          string `json:"protocol"`
	Status            string `json:"status"`
	Tracking          string `json:"tracking"`
	AuthorizationCode string `json:"authorization_code"`
	GeneratedAt       string `json:"generated_at"`
	AwaitingCode      bool   `json:"awaiting_code"`
}

// GenerateLabelsResponse representa o resultado de um ciclo de geração de
// etiquetas: quais vendas já têm código de rastreio e quais seguem
// aguardando ("aguardando código" não é erro)
type GenerateLabelsResponse struct {
	Ready     []string           `json:"ready"`
	Awaiting  []string           `json:"awaiting"`
	Shipments []ShipmentResponse `json:"shipments"`
}

// ToShipmentResponse converte o envio do provedor para o DTO de resposta
func ToShipmentResponse(s melhorenvio.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                s.ID,
		SaleID:            s.OrderID,
		Protocol:          s.Protocol,
		Status:            s.Status,
		Tracking:          s.Tracking,
		AuthorizationCode: s.AuthorizationCode,
		GeneratedAt:       s.GeneratedAt,
		AwaitingCode:      !s.HasTracking(),
	}
}

// ToShipmentListResponse converte a lista de envios para DTOs de resposta
func ToShipmentListResponse(shipments []melhorenvio.Shipment) []ShipmentResponse {
	responses := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		responses = append(responses, ToShipmentResponse(s))
	}
	return responses
}
