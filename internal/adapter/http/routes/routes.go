package routes

import (
	"log"
	"os"
	"strconv"

	_ "imobiliaria_xpto/docs" // This will be auto-generated
	"imobiliaria_xpto/internal/adapter/http/handlers"
	repository2 "imobiliaria_xpto/internal/adapter/persistence/repository"
	"imobiliaria_xpto/internal/infrastructure/database"
	"imobiliaria_xpto/internal/infrastructure/notifications"
	"imobiliaria_xpto/internal/infrastructure/payments"
	"imobiliaria_xpto/internal/usecase"
	"imobiliaria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	propertyRepo := repository2.NewPropertyDynamoRepository(ddb)
	purchaseRepo := repository2.NewPurchaseDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notifications.NewWebhookDispatcher(os.Getenv("NOTIFICATIONS_WEBHOOK_URL"))

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo)
	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, propertyRepo, paymentGateway, notifier, usecase.NewMarketabilityProjector())
	statsUseCase := usecase.NewStatsUseCase(purchaseRepo)

	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUseCase)
	paymentHandler := handlers.NewPaymentHandler(purchaseUseCase)
	statsHandler := handlers.NewStatsHandler(statsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, propertyHandler, purchaseHandler, paymentHandler, statsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
