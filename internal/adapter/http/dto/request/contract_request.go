package request

import (
	"time"

	"locamaq/internal/domain/entities"
)

// ContractRequest is the payload accepted when drafting a contract.
type ContractRequest struct {
	Code         string    `json:"code" binding:"required"`
	CustomerName string    `json:"customer_name" binding:"required"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	TotalValue   float64   `json:"total_value"`
	MonthlyValue float64   `json:"monthly_value"`
	TermMonths   int       `json:"term_months"`
	Description  string    `json:"description"`
}

func (r ContractRequest) ToDetails() entities.ContractDetails {
	return entities.ContractDetails{
		CustomerName: r.CustomerName,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		TotalValue:   r.TotalValue,
		MonthlyValue: r.MonthlyValue,
		TermMonths:   r.TermMonths,
		Description:  r.Description,
	}
}

// ContractDetailsRequest is the bulk-update payload. Status is not accepted
// here; lifecycle endpoints drive all status changes.
type ContractDetailsRequest struct {
	CustomerName string    `json:"customer_name" binding:"required"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	TotalValue   float64   `json:"total_value"`
	MonthlyValue float64   `json:"monthly_value"`
	TermMonths   int       `json:"term_months"`
	Description  string    `json:"description"`
}

func (r ContractDetailsRequest) ToDetails() entities.ContractDetails {
	return entities.ContractDetails{
		CustomerName: r.CustomerName,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		TotalValue:   r.TotalValue,
		MonthlyValue: r.MonthlyValue,
		TermMonths:   r.TermMonths,
		Description:  r.Description,
	}
}

// AssignMachineRequest binds a machine to an active contract. The accumulator
// fields are optional opening balances.
type AssignMachineRequest struct {
	MachineID       string  `json:"machine_id" binding:"required"`
	HourlyRate      float64 `json:"hourly_rate"`
	WorkedHours     float64 `json:"worked_hours"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

type WorkedHoursRequest struct {
	WorkedHours *float64 `json:"worked_hours" binding:"required"`
}

type MaintenanceCostRequest struct {
	MaintenanceCost *float64 `json:"maintenance_cost" binding:"required"`
}
