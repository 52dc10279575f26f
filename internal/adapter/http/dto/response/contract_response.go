package response

import (
	"time"

	"locamaq/internal/domain/entities"
)

type AssignmentResponse struct {
	ID              string    `json:"id"`
	ContractID      string    `json:"contract_id"`
	MachineID       string    `json:"machine_id"`
	HourlyRate      float64   `json:"hourly_rate"`
	WorkedHours     float64   `json:"worked_hours"`
	MaintenanceCost float64   `json:"maintenance_cost"`
	GeneratedIncome float64   `json:"generated_income"`
	Margin          float64   `json:"margin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ContractResponse struct {
	ID           string               `json:"id"`
	Code         string               `json:"code"`
	CustomerName string               `json:"customer_name"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
	TotalValue   float64              `json:"total_value"`
	MonthlyValue float64              `json:"monthly_value"`
	TermMonths   int                  `json:"term_months"`
	Status       string               `json:"status"`
	Description  string               `json:"description,omitempty"`
	Assignments  []AssignmentResponse `json:"assignments"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func FromContract(c *entities.Contract) ContractResponse {
	assignments := make([]AssignmentResponse, 0, len(c.Assignments))
	for i := range c.Assignments {
		a := &c.Assignments[i]
		assignments = append(assignments, AssignmentResponse{
			ID:              a.ID,
			ContractID:      a.ContractID,
			MachineID:       a.MachineID,
			HourlyRate:      a.HourlyRate,
			WorkedHours:     a.WorkedHours,
			MaintenanceCost: a.MaintenanceCost,
			GeneratedIncome: a.GeneratedIncome,
			Margin:          a.Margin,
			CreatedAt:       a.CreatedAt,
			UpdatedAt:       a.UpdatedAt,
		})
	}
	return ContractResponse{
		ID:           c.ID,
		Code:         c.Code,
		CustomerName: c.CustomerName,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		TotalValue:   c.TotalValue,
		MonthlyValue: c.MonthlyValue,
		TermMonths:   c.TermMonths,
		Status:       string(c.Status),
		Description:  c.Description,
		Assignments:  assignments,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		out = append(out, FromContract(&contracts[i]))
	}
	return out
}
