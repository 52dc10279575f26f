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
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for workshop visits.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) Open(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.Open(c.Request.Context(), usecase.OpenWorkOrderInput{
		MachineID:   payload.MachineID,
		Type:        entities.WorkOrderType(payload.Type),
		Description: payload.Description,
		EntryDate:   payload.EntryDate,
	})
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// List returns every work order, or the maintenance history of one machine
// when the machine_id query parameter is present.
func (h *WorkOrderHandler) List(c *gin.Context) {
	var (
		orders []entities.WorkOrder
		err    error
	)
	if machineID := c.Query("machine_id"); machineID != "" {
		orders, err = h.usecase.ListByMachineID(c.Request.Context(), machineID)
	} else {
		orders, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) StartProgress(c *gin.Context) {
	h.patchStatus(c, h.usecase.StartProgress)
}

func (h *WorkOrderHandler) WaitForParts(c *gin.Context) {
	h.patchStatus(c, h.usecase.WaitForParts)
}

func (h *WorkOrderHandler) Complete(c *gin.Context) {
	var payload request.CompleteWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.ExitDate, payload.SparePartsCost, payload.LaborCost)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) patchStatus(c *gin.Context, transition func(ctx context.Context, id string) (*entities.WorkOrder, error)) {
	w, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidMachineID), errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotTerminal):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ACTIVE", "Work order is not completed or cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
