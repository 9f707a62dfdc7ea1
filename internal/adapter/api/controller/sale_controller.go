package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/dto"
	saledomain "github.com/solttameias/store-api/internal/domain/sale"
	userdomain "github.com/solttameias/store-api/internal/domain/user"
	"github.com/solttameias/store-api/internal/service/order"
	"github.com/solttameias/store-api/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	orders *order.Service
	logger logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(orders *order.Service, logger logger.Logger) *SaleController {
	return &SaleController{
		orders: orders,
		logger: logger,
	}
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda com itens e produtos
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.orders.GetSaleByID(ctx, id)
	if err != nil {
		if order.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	// Clientes só enxergam as próprias vendas
	if ctx.GetString("user_role") != string(userdomain.RoleAdmin) && s.UserID != ctx.GetString("user_id") {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso negado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// ListMine retorna as vendas do usuário autenticado
// @Summary Listar minhas vendas
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.SaleListResponse
// @Router /sales/mine [get]
func (c *SaleController) ListMine(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	userID := ctx.GetString("user_id")

	sales, err := c.orders.GetUserSales(ctx, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas do usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, len(sales), pagination.Page, pagination.PageSize))
}

// List retorna todas as vendas (visão administrativa)
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	sales, err := c.orders.GetAllSales(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, len(sales), pagination.Page, pagination.PageSize))
}

// UpdateStatus atualiza o status de uma venda
// @Summary Atualizar status da venda
// @Description Troca o status da venda e dispara notificação e email da transição
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param status body dto.UpdateSaleStatusRequest true "Novo status"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /sales/{id}/status [patch]
func (c *SaleController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateSaleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.orders.UpdateSaleStatus(ctx, id, saledomain.Status(req.Status))
	if err != nil {
		switch {
		case order.IsNotFound(err):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		case errors.Is(err, saledomain.ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", err.Error()))
		case errors.Is(err, saledomain.ErrTerminalStatus):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "venda em status final", err.Error()))
		case errors.Is(err, order.ErrStatusConflict):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "conflito de atualização", err.Error()))
		default:
			c.logger.Error("erro ao atualizar status da venda", "sale_id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// UpdateNotes atualiza as observações administrativas da venda
// @Summary Atualizar observações da venda
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param notes body dto.UpdateSaleNotesRequest true "Observações"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id}/notes [patch]
func (c *SaleController) UpdateNotes(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateSaleNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.orders.UpdateSaleNotes(ctx, id, req.Notes); err != nil {
		if order.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao atualizar observações da venda", "sale_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar observações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("observações atualizadas", nil))
}
