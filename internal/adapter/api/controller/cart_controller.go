package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/dto"
	"github.com/solttameias/store-api/internal/service/cart"
	"github.com/solttameias/store-api/pkg/logger"
)

// CartController gerencia as requisições relacionadas ao carrinho de compras
type CartController struct {
	carts  *cart.Service
	logger logger.Logger
}

// NewCartController cria uma nova instância de CartController
func NewCartController(carts *cart.Service, logger logger.Logger) *CartController {
	return &CartController{
		carts:  carts,
		logger: logger,
	}
}

// Get retorna o carrinho do usuário autenticado
// @Summary Ver carrinho
// @Tags cart
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /cart [get]
func (c *CartController) Get(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	items, err := c.carts.Get(ctx, userID)
	if err != nil {
		c.logger.Error("erro ao ler carrinho", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ler carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CartResponse{Items: items})
}

// Add adiciona um item ao carrinho
// @Summary Adicionar item ao carrinho
// @Tags cart
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.CartItemRequest true "Item do carrinho"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /cart/items [post]
func (c *CartController) Add(ctx *gin.Context) {
	var req dto.CartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.carts.Add(ctx, ctx.GetString("user_id"), req.ToCartItem()); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "quantidade inválida", err.Error()))
			return
		}
		c.logger.Error("erro ao adicionar item ao carrinho", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao adicionar item", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("item adicionado ao carrinho", nil))
}

// Update substitui a quantidade de um item do carrinho
// @Summary Atualizar item do carrinho
// @Tags cart
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.CartItemRequest true "Item do carrinho"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items [put]
func (c *CartController) Update(ctx *gin.Context) {
	var req dto.CartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.carts.Update(ctx, ctx.GetString("user_id"), req.ToCartItem()); err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado no carrinho", ""))
		case errors.Is(err, cart.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "quantidade inválida", err.Error()))
		default:
			c.logger.Error("erro ao atualizar item do carrinho", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar item", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("item atualizado", nil))
}

// Remove retira um item do carrinho
// @Summary Remover item do carrinho
// @Tags cart
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items/{productId} [delete]
func (c *CartController) Remove(ctx *gin.Context) {
	productID := ctx.Param("productId")

	if err := c.carts.Remove(ctx, ctx.GetString("user_id"), productID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado no carrinho", ""))
			return
		}
		c.logger.Error("erro ao remover item do carrinho", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover item", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("item removido", nil))
}

// Clear esvazia o carrinho do usuário
// @Summary Limpar carrinho
// @Tags cart
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Router /cart [delete]
func (c *CartController) Clear(ctx *gin.Context) {
	if err := c.carts.Clear(ctx, ctx.GetString("user_id")); err != nil {
		c.logger.Error("erro ao limpar carrinho", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao limpar carrinho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("carrinho esvaziado", nil))
}
