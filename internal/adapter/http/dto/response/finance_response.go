package response

import "locamaq/internal/usecase"

type MachineProfitabilityResponse struct {
	MachineID            string  `json:"machine_id"`
	TotalIncome          float64 `json:"total_income"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	Margin               float64 `json:"margin"`
	ROI                  float64 `json:"roi"`
}

func FromMachineProfitability(p usecase.MachineProfitability) MachineProfitabilityResponse {
	return MachineProfitabilityResponse{
		MachineID:            p.MachineID,
		TotalIncome:          p.TotalIncome,
		TotalMaintenanceCost: p.TotalMaintenanceCost,
		Margin:               p.Margin,
		ROI:                  p.ROI,
	}
}

type ContractMarginResponse struct {
	ContractID       string  `json:"contract_id"`
	TotalMargin      float64 `json:"total_margin"`
	MarginPercentage float64 `json:"margin_percentage"`
}

func FromContractMargin(m usecase.ContractMargin) ContractMarginResponse {
	return ContractMarginResponse{
		ContractID:       m.ContractID,
		TotalMargin:      m.TotalMargin,
		MarginPercentage: m.MarginPercentage,
	}
}

type FleetAvailabilityResponse struct {
	TotalMachines          int     `json:"total_machines"`
	AvailableMachines      int     `json:"available_machines"`
	AvailabilityPercentage float64 `json:"availability_percentage"`
}

func FromFleetAvailability(a usecase.FleetAvailability) FleetAvailabilityResponse {
	return FleetAvailabilityResponse{
		TotalMachines:          a.TotalMachines,
		AvailableMachines:      a.AvailableMachines,
		AvailabilityPercentage: a.AvailabilityPercentage,
	}
}
