package entities

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// WorkOrderType classifies a workshop visit.

type WorkOrderType string

const (
	WorkOrderTypePreventive WorkOrderType = "PREVENTIVE"
	WorkOrderTypeCorrective WorkOrderType = "CORRECTIVE"
	WorkOrderTypePredictive WorkOrderType = "PREDICTIVE"
)

// WorkOrderStatus represents the lifecycle of a workshop visit.

type WorkOrderStatus string

const (
	WorkOrderStatusOpen         WorkOrderStatus = "OPEN"
	WorkOrderStatusInProgress   WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusWaitingParts WorkOrderStatus = "WAITING_PARTS"
	WorkOrderStatusCompleted    WorkOrderStatus = "COMPLETED"
	WorkOrderStatusCancelled    WorkOrderStatus = "CANCELLED"
)

// WorkOrder records one maintenance visit of a machine.
//
// Invariants:
//   - TotalCost = SparePartsCost + LaborCost, frozen at completion.
//   - DowntimeHours = elapsed whole hours between entry and exit, floored,
//     derived at completion.
//
// Moving the owning machine in and out of the workshop is orchestrated by
// the use-case layer; the work order holds only the machine id.

type WorkOrder struct {
	ID             string
	MachineID      string
	Type           WorkOrderType
	Status         WorkOrderStatus
	Description    string
	EntryDate      time.Time
	ExitDate       *time.Time
	SparePartsCost float64
	LaborCost      float64
	TotalCost      float64
	DowntimeHours  float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewWorkOrder opens a work order in OPEN status.
func NewWorkOrder(id, machineID string, orderType WorkOrderType, description string, entryDate time.Time, now time.Time) (*WorkOrder, error) {
	if strings.TrimSpace(machineID) == "" {
		return nil, fmt.Errorf("%w: machine id is required", ErrValidation)
	}
	switch orderType {
	case WorkOrderTypePreventive, WorkOrderTypeCorrective, WorkOrderTypePredictive:
	default:
		return nil, fmt.Errorf("%w: unknown work order type %q", ErrValidation, orderType)
	}
	if entryDate.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", ErrValidation)
	}
	now = now.UTC()
	return &WorkOrder{
		ID:          id,
		MachineID:   machineID,
		Type:        orderType,
		Status:      WorkOrderStatusOpen,
		Description: description,
		EntryDate:   entryDate.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// StartProgress moves an OPEN order into IN_PROGRESS.
func (w *WorkOrder) StartProgress(now time.Time) error {
	if w.Status != WorkOrderStatusOpen {
		return fmt.Errorf("%w: only open work orders can start progress (status %s)", ErrInvalidTransition, w.Status)
	}
	w.Status = WorkOrderStatusInProgress
	w.touch(now)
	return nil
}

// WaitForParts parks an IN_PROGRESS order until spare parts arrive.
func (w *WorkOrder) WaitForParts(now time.Time) error {
	if w.Status != WorkOrderStatusInProgress {
		return fmt.Errorf("%w: only in-progress work orders can wait for parts (status %s)", ErrInvalidTransition, w.Status)
	}
	w.Status = WorkOrderStatusWaitingParts
	w.touch(now)
	return nil
}

// Complete closes the order, freezing cost and downtime. Downtime is the
// elapsed time between entry and exit floored to whole hours.
func (w *WorkOrder) Complete(exitDate time.Time, sparePartsCost, laborCost float64, now time.Time) error {
	switch w.Status {
	case WorkOrderStatusCompleted:
		return fmt.Errorf("%w: work order already completed", ErrInvalidTransition)
	case WorkOrderStatusCancelled:
		return fmt.Errorf("%w: cannot close cancelled work order", ErrInvalidTransition)
	}
	if sparePartsCost < 0 || laborCost < 0 {
		return fmt.Errorf("%w: work order costs cannot be negative", ErrValidation)
	}
	exitDate = exitDate.UTC()
	if exitDate.Before(w.EntryDate) {
		return fmt.Errorf("%w: exit date cannot precede entry date", ErrValidation)
	}
	w.ExitDate = &exitDate
	w.SparePartsCost = sparePartsCost
	w.LaborCost = laborCost
	w.TotalCost = sparePartsCost + laborCost
	w.DowntimeHours = math.Floor(exitDate.Sub(w.EntryDate).Hours())
	w.Status = WorkOrderStatusCompleted
	w.touch(now)
	return nil
}

// Cancel aborts the order from any non-completed state.
func (w *WorkOrder) Cancel(now time.Time) error {
	if w.Status == WorkOrderStatusCompleted {
		return fmt.Errorf("%w: completed work orders cannot be cancelled", ErrInvalidTransition)
	}
	w.Status = WorkOrderStatusCancelled
	w.touch(now)
	return nil
}

// Terminal reports whether the order reached COMPLETED or CANCELLED.
func (w *WorkOrder) Terminal() bool {
	return w.Status == WorkOrderStatusCompleted || w.Status == WorkOrderStatusCancelled
}

func (w *WorkOrder) touch(now time.Time) {
	w.UpdatedAt = now.UTC()
}
