package handlers

import (
	"context"
	"errors"
	"net/http"

	request "locamaq/internal/adapter/http/dto/request"
	response "locamaq/internal/adapter/http/dto/response"
	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase"
	"locamaq/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler handles HTTP requests for rental contracts and their
// machine assignments.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) Create(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), usecase.CreateContractInput{
		Code:    payload.Code,
		Details: payload.ToDetails(),
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) GetByID(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) UpdateDetails(c *gin.Context) {
	var payload request.ContractDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToDetails())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) Activate(c *gin.Context) {
	h.patchStatus(c, h.usecase.Activate)
}

func (h *ContractHandler) Complete(c *gin.Context) {
	h.patchStatus(c, h.usecase.Complete)
}

func (h *ContractHandler) Cancel(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *ContractHandler) AssignMachine(c *gin.Context) {
	var payload request.AssignMachineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.AssignMachine(c.Request.Context(), c.Param("id"), usecase.AssignMachineInput{
		MachineID:       payload.MachineID,
		HourlyRate:      payload.HourlyRate,
		WorkedHours:     payload.WorkedHours,
		MaintenanceCost: payload.MaintenanceCost,
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) ReleaseMachine(c *gin.Context) {
	contract, err := h.usecase.ReleaseMachine(c.Request.Context(), c.Param("id"), c.Param("machine_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) LogWorkedHours(c *gin.Context) {
	var payload request.WorkedHoursRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.WorkedHours == nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.LogWorkedHours(c.Request.Context(), c.Param("id"), c.Param("machine_id"), *payload.WorkedHours)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) LogMaintenanceCost(c *gin.Context) {
	var payload request.MaintenanceCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.MaintenanceCost == nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.LogMaintenanceCost(c.Request.Context(), c.Param("id"), c.Param("machine_id"), *payload.MaintenanceCost)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) patchStatus(c *gin.Context, transition func(ctx context.Context, id string) (*entities.Contract, error)) {
	contract, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidMachineID), errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractCodeExists):
		return pkg.NewDomainErrorSimple("CONTRACT_CODE_EXISTS", "Contract code already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
