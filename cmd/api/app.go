package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/solttameias/store-api/docs"
	"github.com/solttameias/store-api/internal/adapter/api/controller"
	"github.com/solttameias/store-api/internal/adapter/api/route"
	"github.com/solttameias/store-api/internal/adapter/repository"
	"github.com/solttameias/store-api/internal/gateway/melhorenvio"
	"github.com/solttameias/store-api/internal/gateway/mercadopago"
	"github.com/solttameias/store-api/internal/infrastructure/database"
	"github.com/solttameias/store-api/internal/service/cart"
	"github.com/solttameias/store-api/internal/service/order"
	"github.com/solttameias/store-api/internal/service/shipping"
	"github.com/solttameias/store-api/pkg/logger"
	"github.com/solttameias/store-api/pkg/mailer"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	redis  *redis.Client
	logger logger.Logger

	authController         *controller.AuthController
	productController      *controller.ProductController
	saleController         *controller.SaleController
	notificationController *controller.NotificationController
	cartController         *controller.CartController
	checkoutController     *controller.CheckoutController
	shippingController     *controller.ShippingController
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Banco de dados e migrações
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(); err != nil {
		return nil, err
	}

	// Redis para o carrinho de compras
	rdb, err := cart.NewRedisClient()
	if err != nil {
		return nil, err
	}

	// Repositórios
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Serviços
	mail := mailer.NewFromEnv(log)
	orderService := order.NewService(
		saleRepo,
		order.NewCatalogReader(productRepo),
		userRepo,
		order.NewRepositorySink(notificationRepo),
		mail,
		log,
	)
	cartService := cart.NewService(rdb)

	// Gateways externos
	mpClient := mercadopago.NewClientFromEnv()
	meClient := melhorenvio.NewClientFromEnv()
	labelPoller := shipping.NewLabelPoller(meClient, log)

	// Controllers
	app := &App{
		db:     db,
		redis:  rdb,
		logger: log,

		authController:         controller.NewAuthController(userRepo, log),
		productController:      controller.NewProductController(productRepo, log),
		saleController:         controller.NewSaleController(orderService, log),
		notificationController: controller.NewNotificationController(notificationRepo, log),
		cartController:         controller.NewCartController(cartService, log),
		checkoutController:     controller.NewCheckoutController(orderService, mpClient, cartService, log),
		shippingController:     controller.NewShippingController(orderService, userRepo, meClient, labelPoller, log),
	}

	app.setupRouter()
	return app, nil
}

// setupRouter configura o router, os middlewares globais e as rotas
func (a *App) setupRouter() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterSaleRoutes(api, a.saleController)
	route.RegisterNotificationRoutes(api, a.notificationController)
	route.RegisterCartRoutes(api, a.cartController)
	route.RegisterCheckoutRoutes(api, a.checkoutController)
	route.RegisterShippingRoutes(api, a.shippingController)

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a.router = router
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}
