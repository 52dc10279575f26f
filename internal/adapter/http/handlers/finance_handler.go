package handlers

import (
	"errors"
	"net/http"

	response "locamaq/internal/adapter/http/dto/response"
	"locamaq/internal/usecase"
	"locamaq/pkg"

	"github.com/gin-gonic/gin"
)

// FinanceHandler exposes the derived financial metrics.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) MachineProfitability(c *gin.Context) {
	p, err := h.usecase.CalculateMachineProfitability(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachineProfitability(p))
}

func (h *FinanceHandler) ContractMargin(c *gin.Context) {
	m, err := h.usecase.CalculateContractMargin(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractMargin(m))
}

func (h *FinanceHandler) FleetAvailability(c *gin.Context) {
	a, err := h.usecase.CalculateFleetAvailability(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFleetAvailability(a))
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineID), errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
