package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "imobiliaria_xpto/internal/adapter/http/dto/response"
	"imobiliaria_xpto/internal/usecase"
	"imobiliaria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the purchase growth figures for the marketplace dashboard.

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

// GetPurchaseGrowth compares the last ?window_days=N (default 30) against the
// previous window of the same length.
func (h *StatsHandler) GetPurchaseGrowth(c *gin.Context) {
	windowDays := 0
	if raw := c.Query("window_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid window_days", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		windowDays = parsed
	}

	stats, err := h.usecase.PurchaseGrowth(c.Request.Context(), windowDays)
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseStats(stats))
}

func mapStatsError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidStatsWindow) {
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid stats window", http.StatusBadRequest)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
