package response

import (
	"time"

	"locamaq/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID             string     `json:"id"`
	MachineID      string     `json:"machine_id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	Description    string     `json:"description,omitempty"`
	EntryDate      time.Time  `json:"entry_date"`
	ExitDate       *time.Time `json:"exit_date,omitempty"`
	SparePartsCost float64    `json:"spare_parts_cost"`
	LaborCost      float64    `json:"labor_cost"`
	TotalCost      float64    `json:"total_cost"`
	DowntimeHours  float64    `json:"downtime_hours"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromWorkOrder(w *entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:             w.ID,
		MachineID:      w.MachineID,
		Type:           string(w.Type),
		Status:         string(w.Status),
		Description:    w.Description,
		EntryDate:      w.EntryDate,
		ExitDate:       w.ExitDate,
		SparePartsCost: w.SparePartsCost,
		LaborCost:      w.LaborCost,
		TotalCost:      w.TotalCost,
		DowntimeHours:  w.DowntimeHours,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromWorkOrder(&orders[i]))
	}
	return out
}
