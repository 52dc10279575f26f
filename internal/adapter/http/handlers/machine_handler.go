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
	errInvalidMachinePayload = pkg.NewDomainErrorSimple("INVALID_MACHINE_INPUT", "Invalid machine payload", http.StatusBadRequest)
)

// MachineHandler handles HTTP requests for fleet machines.

type MachineHandler struct {
	usecase usecase.IMachineUseCase
}

func NewMachineHandler(uc usecase.IMachineUseCase) *MachineHandler {
	return &MachineHandler{usecase: uc}
}

func (h *MachineHandler) Create(c *gin.Context) {
	var payload request.MachineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), usecase.CreateMachineInput{
		Code:      payload.Code,
		HourMeter: payload.HourMeter,
		Details:   payload.ToDetails(),
	})
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMachine(m))
}

func (h *MachineHandler) GetByID(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func (h *MachineHandler) GetByCode(c *gin.Context) {
	m, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func (h *MachineHandler) List(c *gin.Context) {
	machines, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachines(machines))
}

func (h *MachineHandler) UpdateDetails(c *gin.Context) {
	var payload request.MachineDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	m, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToDetails())
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func (h *MachineHandler) UpdateHourMeter(c *gin.Context) {
	var payload request.HourMeterRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.HourMeter == nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	m, err := h.usecase.UpdateHourMeter(c.Request.Context(), c.Param("id"), *payload.HourMeter)
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func (h *MachineHandler) ChangeLocation(c *gin.Context) {
	var payload request.LocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	m, err := h.usecase.ChangeLocation(c.Request.Context(), c.Param("id"), payload.Location)
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func (h *MachineHandler) Transfer(c *gin.Context) {
	h.patchStatus(c, h.usecase.Transfer)
}

func (h *MachineHandler) MarkAvailable(c *gin.Context) {
	h.patchStatus(c, h.usecase.MarkAvailable)
}

func (h *MachineHandler) Deactivate(c *gin.Context) {
	h.patchStatus(c, h.usecase.Deactivate)
}

func (h *MachineHandler) Reactivate(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reactivate)
}

func (h *MachineHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MachineHandler) patchStatus(c *gin.Context, transition func(ctx context.Context, id string) (*entities.Machine, error)) {
	m, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMachine(m))
}

func mapMachineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineID), errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineCodeExists):
		return pkg.NewDomainErrorSimple("MACHINE_CODE_EXISTS", "Machine code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrMachineInUse):
		return pkg.NewDomainErrorSimple("MACHINE_IN_USE", "Machine is in contract or workshop", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
