package handlers

import (
	"errors"
	"log"
	"net/http"

	request "imobiliaria_xpto/internal/adapter/http/dto/request"
	response "imobiliaria_xpto/internal/adapter/http/dto/response"
	"imobiliaria_xpto/internal/usecase"
	"imobiliaria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPropertyPayload = pkg.NewDomainErrorSimple("INVALID_PROPERTY_INPUT", "Invalid property payload", http.StatusBadRequest)

// PropertyHandler handles HTTP requests for marketplace listings.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

// CreateProperty registers a new listing; new listings start available.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	listing, err := h.usecase.CreateListing(c.Request.Context(), payload.ResolveTitle(), payload.ResolveAddress(), payload.ResolveAgentID(), price)
	if err != nil {
		log.Printf("[property][handler] create failed err=%v", err)
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[property][handler] create success property_id=%s", listing.ID)

	c.JSON(http.StatusCreated, response.FromProperty(listing))
}

func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	listing, err := h.usecase.GetByID(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(listing))
}

// ListProperties lists listings, optionally filtered by ?marketability=.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	listings, err := h.usecase.List(c.Request.Context(), c.Query("marketability"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperties(listings))
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidListing), errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidMarketability):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	default:
		return mapPurchaseError(err)
	}
}
