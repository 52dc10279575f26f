package request

import "time"

// WorkOrderRequest is the payload accepted when opening a workshop visit.
// EntryDate defaults to the current time when omitted.
type WorkOrderRequest struct {
	MachineID   string    `json:"machine_id" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Description string    `json:"description"`
	EntryDate   time.Time `json:"entry_date"`
}

// CompleteWorkOrderRequest closes a visit, freezing costs and downtime.
type CompleteWorkOrderRequest struct {
	ExitDate       time.Time `json:"exit_date" binding:"required"`
	SparePartsCost float64   `json:"spare_parts_cost"`
	LaborCost      float64   `json:"labor_cost"`
}
