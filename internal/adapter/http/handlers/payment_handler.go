package handlers

import (
	"log"
	"net/http"

	request "imobiliaria_xpto/internal/adapter/http/dto/request"
	response "imobiliaria_xpto/internal/adapter/http/dto/response"
	"imobiliaria_xpto/internal/usecase"
	"imobiliaria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the payment ledger of a purchase.

type PaymentHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPaymentHandler(uc usecase.IPurchaseUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByPurchaseID applies one payment to the purchase in the path.
func (h *PaymentHandler) CreatePaymentByPurchaseID(c *gin.Context) {
	purchaseID := c.Param("purchase_id")

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] apply start purchase_id=%s method=%s", purchaseID, payload.ResolveMethod())
	purchase, payment, err := h.usecase.ApplyPayment(c.Request.Context(), purchaseID, amount, payload.ResolveMethod(), payload.Notes)
	if err != nil {
		log.Printf("[payment][handler] apply failed purchase_id=%s err=%v", purchaseID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] apply success purchase_id=%s payment_id=%s remaining=%d", purchaseID, payment.ID, purchase.RemainingAmount.Amount)

	c.JSON(http.StatusCreated, response.AppliedPaymentResponse{
		Purchase: response.FromPurchase(purchase),
		Payment:  response.FromPayment(payment),
	})
}

// ListPaymentsByPurchaseID returns the purchase's ledger in commit order.
func (h *PaymentHandler) ListPaymentsByPurchaseID(c *gin.Context) {
	purchaseID := c.Param("purchase_id")

	payments, err := h.usecase.ListPayments(c.Request.Context(), purchaseID)
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(purchaseID, payments))
}
