package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterShippingRoutes registra as rotas administrativas de frete
func RegisterShippingRoutes(r *gin.RouterGroup, shippingController *controller.ShippingController) {
	shipping := r.Group("/shipping")
	shipping.Use(auth.JWTAuthMiddleware(), auth.RoleAuthMiddleware("admin"))
	{
		shipping.POST("/buy", shippingController.BuyShipment)
		shipping.POST("/labels/generate", shippingController.GenerateLabels)
		shipping.POST("/labels/print", shippingController.PrintLabels)
		shipping.GET("/shipments", shippingController.ListShipments)
		shipping.DELETE("/shipments/:saleId", shippingController.CancelShipment)
	}
}
