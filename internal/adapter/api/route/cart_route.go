package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterCartRoutes registra as rotas do carrinho de compras
func RegisterCartRoutes(r *gin.RouterGroup, cartController *controller.CartController) {
	cart := r.Group("/cart")
	cart.Use(auth.JWTAuthMiddleware())
	{
		cart.GET("", cartController.Get)
		cart.DELETE("", cartController.Clear)
		cart.POST("/items", cartController.Add)
		cart.PUT("/items", cartController.Update)
		cart.DELETE("/items/:productId", cartController.Remove)
	}
}
