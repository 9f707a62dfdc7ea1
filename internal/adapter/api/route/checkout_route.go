package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterCheckoutRoutes registra as rotas de checkout e o webhook de pagamento
func RegisterCheckoutRoutes(r *gin.RouterGroup, checkoutController *controller.CheckoutController) {
	r.POST("/checkout", auth.JWTAuthMiddleware(), checkoutController.Checkout)

	// O webhook é chamado pelo provedor de pagamento, sem token da API
	r.POST("/payments/webhook", checkoutController.Webhook)
}
