package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/dto"
	"github.com/solttameias/store-api/internal/domain/user"
	"github.com/solttameias/store-api/internal/gateway/melhorenvio"
	"github.com/solttameias/store-api/internal/service/order"
	"github.com/solttameias/store-api/internal/service/shipping"
	"github.com/solttameias/store-api/pkg/logger"
)

// ShippingController gerencia o fluxo administrativo de frete: compra de
// envio, geração e impressão de etiquetas
type ShippingController struct {
	orders  *order.Service
	users   user.Repository
	gateway *melhorenvio.Client
	poller  *shipping.LabelPoller
	logger  logger.Logger
}

// NewShippingController cria uma nova instância de ShippingController
func NewShippingController(orders *order.Service, users user.Repository, gateway *melhorenvio.Client, poller *shipping.LabelPoller, logger logger.Logger) *ShippingController {
	return &ShippingController{
		orders:  orders,
		users:   users,
		gateway: gateway,
		poller:  poller,
		logger:  logger,
	}
}

// BuyShipment adiciona as vendas ao carrinho do provedor e fecha a compra
// @Summary Comprar frete
// @Description Adiciona cada venda ao carrinho do Melhor Envio e fecha a compra dos envios
// @Tags shipping
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body dto.BuyShipmentRequest true "Vendas e serviço de frete"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /shipping/buy [post]
func (c *ShippingController) BuyShipment(ctx *gin.Context) {
	var req dto.BuyShipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	for _, saleID := range req.SaleIDs {
		s, err := c.orders.GetSaleByID(ctx, saleID)
		if err != nil {
			if order.IsNotFound(err) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada: "+saleID, ""))
				return
			}
			c.logger.Error("erro ao buscar venda para frete", "sale_id", saleID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
			return
		}

		toName := ""
		if u, err := c.users.FindByID(ctx, s.UserID); err == nil {
			toName = u.Name
		} else {
			c.logger.Warn("erro ao buscar cliente da venda", "sale_id", s.ID, "error", err)
		}

		if _, err := c.gateway.AddToCart(ctx, melhorenvio.CartRequest{
			OrderID:   s.ID,
			Service:   req.Service,
			ToName:    toName,
			ToAddress: s.Address.Street,
			ToNumber:  s.Address.Number,
			ToCity:    s.Address.City,
			ToState:   s.Address.State,
			ToZipCode: s.Address.ZipCode,
			Insurance: s.Total,
		}); err != nil {
			c.logger.Error("erro ao adicionar venda ao carrinho de frete", "sale_id", s.ID, "error", err)
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao adicionar envio", err.Error()))
			return
		}
	}

	if err := c.gateway.Checkout(ctx, req.SaleIDs); err != nil {
		c.logger.Error("erro ao fechar compra de frete", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao comprar frete", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("frete comprado", nil))
}

// GenerateLabels executa o ciclo de geração de etiquetas para as vendas
// @Summary Gerar etiquetas
// @Description Pede a geração das etiquetas ao provedor e consulta o resultado um número limitado de vezes. Vendas ainda sem código de rastreio voltam como "aguardando", o que não é um erro.
// @Tags shipping
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body dto.GenerateLabelsRequest true "Vendas"
// @Success 200 {object} dto.GenerateLabelsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /shipping/labels/generate [post]
func (c *ShippingController) GenerateLabels(ctx *gin.Context) {
	var req dto.GenerateLabelsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	shipments, err := c.poller.Run(ctx, req.SaleIDs, func(attempt, maxAttempts int, _ []melhorenvio.Shipment) {
		c.logger.Info("consultando etiquetas geradas", "attempt", attempt, "max_attempts", maxAttempts)
	})
	if err != nil {
		c.logger.Error("erro no ciclo de geração de etiquetas", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao gerar etiquetas", err.Error()))
		return
	}

	ready, awaiting := shipping.AwaitingCode(req.SaleIDs, shipments)

	ctx.JSON(http.StatusOK, dto.GenerateLabelsResponse{
		Ready:     ready,
		Awaiting:  awaiting,
		Shipments: dto.ToShipmentListResponse(shipments),
	})
}

// PrintLabels retorna a URL do documento de impressão das etiquetas
// @Summary Imprimir etiquetas
// @Tags shipping
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body dto.PrintLabelsRequest true "Vendas e modo de impressão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /shipping/labels/print [post]
func (c *ShippingController) PrintLabels(ctx *gin.Context) {
	var req dto.PrintLabelsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.gateway.PrintLabels(ctx, req.SaleIDs, req.Mode)
	if err != nil {
		c.logger.Error("erro ao imprimir etiquetas", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao imprimir etiquetas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("etiquetas prontas para impressão", gin.H{"url": result.URL}))
}

// ListShipments lista os envios registrados no provedor, cruzados com os
// dados da venda correspondente
// @Summary Listar envios
// @Tags shipping
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ShipmentResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /shipping/shipments [get]
func (c *ShippingController) ListShipments(ctx *gin.Context) {
	shipments, err := c.gateway.ListShipments(ctx)
	if err != nil {
		c.logger.Error("erro ao listar envios", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar envios", err.Error()))
		return
	}

	responses := dto.ToShipmentListResponse(shipments)
	for i := range responses {
		if responses[i].SaleID == "" {
			continue
		}
		s, err := c.orders.GetSaleByID(ctx, responses[i].SaleID)
		if err != nil {
			// Envio de um pedido que não é desta loja ou foi removido
			continue
		}
		responses[i].SaleNumber = s.Number
		responses[i].SaleStatus = string(s.Status)
	}

	ctx.JSON(http.StatusOK, responses)
}

// CancelShipment cancela um envio no provedor
// @Summary Cancelar envio
// @Tags shipping
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param saleId path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /shipping/shipments/{saleId} [delete]
func (c *ShippingController) CancelShipment(ctx *gin.Context) {
	saleID := ctx.Param("saleId")

	if err := c.gateway.CancelShipment(ctx, saleID); err != nil {
		c.logger.Error("erro ao cancelar envio", "sale_id", saleID, "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao cancelar envio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("envio cancelado", nil))
}
