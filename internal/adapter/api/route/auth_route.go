package route

import (
	"github.com/gin-gonic/gin"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/pkg/auth"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		// Cadastro e login não requerem autenticação
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// Dados do usuário logado
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
