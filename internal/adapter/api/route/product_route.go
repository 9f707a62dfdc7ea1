package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		// Consulta do catálogo é pública; administradores autenticados
		// enxergam também os produtos inativos
		products.GET("", auth.OptionalJWTAuthMiddleware(), productController.List)
		products.GET("/:id", productController.Get)

		// Manutenção do catálogo é restrita à administração
		admin := products.Group("")
		admin.Use(auth.JWTAuthMiddleware(), auth.RoleAuthMiddleware("admin"))
		{
			admin.POST("", productController.Create)
			admin.PUT("/:id", productController.Update)
			admin.DELETE("/:id", productController.Delete)
		}
	}
}
