package response

import (
	"time"

	"locamaq/internal/domain/entities"
)

type MachineResponse struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Type             string    `json:"type,omitempty"`
	Brand            string    `json:"brand,omitempty"`
	Model            string    `json:"model,omitempty"`
	Year             int       `json:"year,omitempty"`
	SerialNumber     string    `json:"serial_number,omitempty"`
	HourMeter        float64   `json:"hour_meter"`
	AcquisitionDate  time.Time `json:"acquisition_date"`
	AcquisitionValue float64   `json:"acquisition_value"`
	UsefulLifeHours  float64   `json:"useful_life_hours"`
	Status           string    `json:"status"`
	Location         string    `json:"location,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromMachine(m *entities.Machine) MachineResponse {
	return MachineResponse{
		ID:               m.ID,
		Code:             m.Code,
		Type:             m.Type,
		Brand:            m.Brand,
		Model:            m.Model,
		Year:             m.Year,
		SerialNumber:     m.SerialNumber,
		HourMeter:        m.HourMeter,
		AcquisitionDate:  m.AcquisitionDate,
		AcquisitionValue: m.AcquisitionValue,
		UsefulLifeHours:  m.UsefulLifeHours,
		Status:           string(m.Status),
		Location:         m.Location,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromMachines(machines []entities.Machine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for i := range machines {
		out = append(out, FromMachine(&machines[i]))
	}
	return out
}
