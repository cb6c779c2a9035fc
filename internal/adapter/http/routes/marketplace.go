package routes

import (
	"imobiliaria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProperties = "/properties"
	PathPurchases  = "/purchases"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	propertyHandler *handlers.PropertyHandler,
	purchaseHandler *handlers.PurchaseHandler,
	paymentHandler *handlers.PaymentHandler,
	statsHandler *handlers.StatsHandler,
) {
	properties := rg.Group(PathProperties)
	{
		properties.POST("", propertyHandler.CreateProperty)
		properties.GET("", propertyHandler.ListProperties)
		properties.GET("/:property_id", propertyHandler.GetPropertyByID)
	}

	purchases := rg.Group(PathPurchases)
	{
		// Stats first: gin would otherwise route /stats into :purchase_id.
		purchases.GET("/stats", statsHandler.GetPurchaseGrowth)

		purchases.POST("", purchaseHandler.CreatePurchase)
		purchases.GET("/:purchase_id", purchaseHandler.GetPurchaseByID)
		purchases.PATCH("/:purchase_id/cancel", purchaseHandler.CancelPurchase)
		purchases.PATCH("/:purchase_id/status", purchaseHandler.SetPurchaseStatus)

		purchases.POST("/:purchase_id/payments", paymentHandler.CreatePaymentByPurchaseID)
		purchases.GET("/:purchase_id/payments", paymentHandler.ListPaymentsByPurchaseID)
	}
}
