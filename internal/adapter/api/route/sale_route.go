package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterSaleRoutes registra as rotas de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.GET("/mine", saleController.ListMine)
		sales.GET("/:id", saleController.Get)

		// Operações administrativas sobre o ciclo de vida do pedido
		admin := sales.Group("")
		admin.Use(auth.RoleAuthMiddleware("admin"))
		{
			admin.GET("", saleController.List)
			admin.PATCH("/:id/status", saleController.UpdateStatus)
			admin.PATCH("/:id/notes", saleController.UpdateNotes)
		}
	}
}
