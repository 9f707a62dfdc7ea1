package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/dto"
	"github.com/solttameias/store-api/internal/adapter/repository"
	"github.com/solttameias/store-api/internal/domain/notification"
	"github.com/solttameias/store-api/pkg/logger"
)

// NotificationController gerencia as requisições relacionadas a notificações
type NotificationController struct {
	notifications notification.Repository
	logger        logger.Logger
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(notifications notification.Repository, logger logger.Logger) *NotificationController {
	return &NotificationController{
		notifications: notifications,
		logger:        logger,
	}
}

// List retorna as notificações do usuário autenticado
// @Summary Listar notificações
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.NotificationListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	userID := ctx.GetString("user_id")

	notifications, err := c.notifications.FindByUser(ctx, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notificações", err.Error()))
		return
	}

	unread, err := c.notifications.CountUnread(ctx, userID)
	if err != nil {
		c.logger.Error("erro ao contar notificações não lidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, unread))
}

// MarkRead marca uma notificação como lida
// @Summary Marcar notificação como lida
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.notifications.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notificação não encontrada", ""))
			return
		}
		c.logger.Error("erro ao marcar notificação como lida", "notification_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificação marcada como lida", nil))
}

// MarkAllRead marca todas as notificações do usuário como lidas
// @Summary Marcar todas como lidas
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Router /notifications/read-all [patch]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	if err := c.notifications.MarkAllRead(ctx, userID); err != nil {
		c.logger.Error("erro ao marcar notificações como lidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificações marcadas como lidas", nil))
}

// Delete remove uma notificação
// @Summary Remover notificação
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notificação não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover notificação", "notification_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificação removida", nil))
}
