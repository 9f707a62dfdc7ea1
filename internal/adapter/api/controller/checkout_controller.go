package controller

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/solttameias/store-api/internal/adapter/api/dto"
	saledomain "github.com/solttameias/store-api/internal/domain/sale"
	"github.com/solttameias/store-api/internal/gateway/mercadopago"
	"github.com/solttameias/store-api/internal/service/cart"
	"github.com/solttameias/store-api/internal/service/order"
	"github.com/solttameias/store-api/pkg/logger"
)

// CheckoutController gerencia o fechamento de pedidos e o webhook de pagamento
type CheckoutController struct {
	orders   *order.Service
	payments *mercadopago.Client
	carts    *cart.Service
	validate *validatorv10.Validate
	logger   logger.Logger
}

// NewCheckoutController cria uma nova instância de CheckoutController
func NewCheckoutController(orders *order.Service, payments *mercadopago.Client, carts *cart.Service, logger logger.Logger) *CheckoutController {
	return &CheckoutController{
		orders:   orders,
		payments: payments,
		carts:    carts,
		validate: dto.NewCheckoutValidator(),
		logger:   logger,
	}
}

// Checkout cria a venda e a preferência de pagamento
// @Summary Fechar pedido
// @Description Cria a venda com preços congelados do catálogo e retorna a URL de pagamento
// @Tags checkout
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param checkout body dto.CheckoutRequest true "Dados do checkout"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /checkout [post]
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.validate.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID := ctx.GetString("user_id")

	input := order.CreateSaleInput{
		UserID:        userID,
		PaymentMethod: saledomain.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		Address:       req.Address.ToAddress(),
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = saledomain.PaymentMercadoPago
	}

	if len(req.Items) > 0 {
		for _, it := range req.Items {
			saleType := saledomain.Type(it.SaleType)
			if saleType == "" {
				saleType = saledomain.TypeRetail
			}
			input.Items = append(input.Items, order.ItemInput{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				SaleType:  saleType,
			})
		}
	} else {
		// Sem itens no corpo, o pedido sai do carrinho do usuário
		cartItems, err := c.carts.Get(ctx, userID)
		if err != nil {
			c.logger.Error("erro ao ler carrinho no checkout", "user_id", userID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ler carrinho", err.Error()))
			return
		}
		if len(cartItems) == 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "carrinho vazio", cart.ErrEmptyCart.Error()))
			return
		}
		for _, it := range cartItems {
			input.Items = append(input.Items, order.ItemInput{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				SaleType:  it.SaleType,
			})
		}
	}

	created, err := c.orders.CreateSale(ctx, input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar venda", err.Error()))
		return
	}

	// Relê a venda para carregar nome e imagem dos produtos dos itens
	s, err := c.orders.GetSaleByID(ctx, created.ID)
	if err != nil {
		c.logger.Error("erro ao reler venda após criação", "sale_id", created.ID, "error", err)
		s = created
	}

	pref, err := c.payments.CreatePreference(ctx, c.buildPreference(ctx, s))
	if err != nil {
		c.logger.Error("erro ao criar preferência de pagamento", "sale_id", s.ID, "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao iniciar pagamento", err.Error()))
		return
	}

	// O carrinho cumpriu seu papel
	if err := c.carts.Clear(ctx, userID); err != nil {
		c.logger.Error("erro ao limpar carrinho após checkout", "user_id", userID, "error", err)
	}

	ctx.JSON(http.StatusCreated, dto.CheckoutResponse{
		Sale:        dto.ToSaleResponse(s),
		RedirectURL: pref.InitPoint,
	})
}

func (c *CheckoutController) buildPreference(ctx *gin.Context, s *saledomain.Sale) mercadopago.PreferenceRequest {
	items := make([]mercadopago.PreferenceItem, 0, len(s.Items))
	for _, it := range s.Items {
		title := it.ProductName
		if title == "" {
			title = "Produto " + it.ProductID
		}
		items = append(items, mercadopago.PreferenceItem{
			Title:      title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			CurrencyID: "BRL",
		})
	}

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	return mercadopago.PreferenceRequest{
		Items: items,
		Payer: mercadopago.Payer{
			Name:  ctx.GetString("user_name"),
			Email: ctx.GetString("user_email"),
		},
		BackURLs: mercadopago.BackURLs{
			Success: frontend + "/pedidos/" + s.ID + "?pagamento=sucesso",
			Failure: frontend + "/pedidos/" + s.ID + "?pagamento=falha",
			Pending: frontend + "/pedidos/" + s.ID + "?pagamento=pendente",
		},
		AutoReturn:        "approved",
		ExternalReference: s.ID,
		NotificationURL:   os.Getenv("MERCADO_PAGO_WEBHOOK_URL"),
	}
}

// webhookPayload é o corpo da notificação do Mercado Pago
type webhookPayload struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook recebe as notificações de pagamento do Mercado Pago
// @Summary Webhook de pagamento
// @Description Consulta o pagamento notificado e aplica o resultado na venda correspondente
// @Tags checkout
// @Accept json
// @Produce json
// @Param notification body object true "Notificação do provedor"
// @Success 200 {object} dto.SuccessResponse
// @Router /payments/webhook [post]
func (c *CheckoutController) Webhook(ctx *gin.Context) {
	var payload webhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		// Responde 200 mesmo em corpo inesperado para o provedor não reenviar
		c.logger.Error("webhook com corpo inválido", "error", err)
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ignorado", nil))
		return
	}

	if payload.Type != "payment" || payload.Data.ID == "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ignorado", nil))
		return
	}

	payment, err := c.payments.GetPayment(ctx, payload.Data.ID)
	if err != nil {
		c.logger.Error("erro ao consultar pagamento", "payment_id", payload.Data.ID, "error", err)
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("pagamento não consultado", nil))
		return
	}

	if payment.ExternalReference == "" {
		c.logger.Error("pagamento sem referência externa", "payment_id", fmt.Sprintf("%d", payment.ID))
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ignorado", nil))
		return
	}

	if _, err := c.orders.HandlePaymentResult(ctx, payment.ExternalReference, payment.Status); err != nil {
		c.logger.Error("erro ao aplicar resultado do pagamento",
			"sale_id", payment.ExternalReference, "status", payment.Status, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("processado", nil))
}
