package handlers

import (
	"errors"
	"log"
	"net/http"

	request "imobiliaria_xpto/internal/adapter/http/dto/request"
	response "imobiliaria_xpto/internal/adapter/http/dto/response"
	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase"
	"imobiliaria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPurchasePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid purchase payload", http.StatusBadRequest)

// PurchaseHandler handles HTTP requests for the purchase lifecycle: creation,
// cancellation and the administrative status override.

type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

// CreatePurchase commits a buyer to an available property, optionally recording
// a down payment in the same atomic unit.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var payload request.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}

	total, err := payload.ResolveTotalAmount()
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	down, err := payload.ResolveDownPayment()
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[purchase][handler] create start property_id=%s buyer_id=%s", payload.ResolvePropertyID(), payload.ResolveBuyerID())
	purchase, err := h.usecase.CreatePurchase(c.Request.Context(), payload.ResolvePropertyID(), payload.ResolveBuyerID(), total, down, payload.Notes)
	if err != nil {
		log.Printf("[purchase][handler] create failed property_id=%s err=%v", payload.ResolvePropertyID(), err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] create success purchase_id=%s status=%s", purchase.ID, purchase.Status)

	c.JSON(http.StatusCreated, response.FromPurchase(purchase))
}

func (h *PurchaseHandler) GetPurchaseByID(c *gin.Context) {
	purchase, err := h.usecase.GetByID(c.Request.Context(), c.Param("purchase_id"))
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

// CancelPurchase closes a pending purchase and releases the property.
func (h *PurchaseHandler) CancelPurchase(c *gin.Context) {
	purchaseID := c.Param("purchase_id")

	var payload request.StatusRequest
	// Body is optional on cancel; only notes are read from it.
	_ = c.ShouldBindJSON(&payload)

	log.Printf("[purchase][handler] cancel start purchase_id=%s", purchaseID)
	purchase, err := h.usecase.CancelPurchase(c.Request.Context(), purchaseID, payload.Notes)
	if err != nil {
		log.Printf("[purchase][handler] cancel failed purchase_id=%s err=%v", purchaseID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] cancel success purchase_id=%s", purchaseID)

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

// SetPurchaseStatus is the administrative override path. Forcing completed with
// an outstanding balance is accepted and flagged on the returned purchase.
func (h *PurchaseHandler) SetPurchaseStatus(c *gin.Context) {
	purchaseID := c.Param("purchase_id")

	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}

	log.Printf("[purchase][handler] set-status start purchase_id=%s status=%s", purchaseID, payload.ResolveStatus())
	purchase, err := h.usecase.SetPurchaseStatus(c.Request.Context(), purchaseID, payload.ResolveStatus(), payload.Notes)
	if err != nil {
		log.Printf("[purchase][handler] set-status failed purchase_id=%s err=%v", purchaseID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] set-status success purchase_id=%s status=%s closed_with_balance=%t", purchaseID, purchase.Status, purchase.ClosedWithBalance)

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

// mapPurchaseError translates the domain error taxonomy into stable, distinct
// codes so the front end can render each failure kind appropriately.
func mapPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidAmount), errors.Is(err, entities.ErrNegativeAmount), errors.Is(err, request.ErrInvalidMoneyValue):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCurrencyMismatch):
		return pkg.NewDomainErrorSimple("CURRENCY_MISMATCH", "Currency mismatch", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPurchaseID), errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidBuyerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrAmountExceedsBalance):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_BALANCE", "Payment exceeds remaining balance", http.StatusConflict)
	case errors.Is(err, entities.ErrPurchaseClosed):
		return pkg.NewDomainErrorSimple("PURCHASE_CLOSED", "Purchase already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPropertyNotAvailable):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_AVAILABLE", "Property not available for purchase", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Purchase was updated concurrently, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLedgerInvariant):
		return pkg.NewDomainError("LEDGER_INVARIANT", "Recorded payments do not reconcile with the purchase balance", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
