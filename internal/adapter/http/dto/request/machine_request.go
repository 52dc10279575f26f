package request

import (
	"time"

	"locamaq/internal/domain/entities"
)

// MachineRequest is the payload accepted when registering a machine.
type MachineRequest struct {
	Code             string    `json:"code" binding:"required"`
	Type             string    `json:"type"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	SerialNumber     string    `json:"serial_number"`
	HourMeter        float64   `json:"hour_meter"`
	AcquisitionDate  time.Time `json:"acquisition_date"`
	AcquisitionValue float64   `json:"acquisition_value"`
	UsefulLifeHours  float64   `json:"useful_life_hours"`
	Location         string    `json:"location"`
}

func (r MachineRequest) ToDetails() entities.MachineDetails {
	return entities.MachineDetails{
		Type:             r.Type,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		SerialNumber:     r.SerialNumber,
		AcquisitionDate:  r.AcquisitionDate,
		AcquisitionValue: r.AcquisitionValue,
		UsefulLifeHours:  r.UsefulLifeHours,
		Location:         r.Location,
	}
}

// MachineDetailsRequest is the bulk-update payload. Status is not accepted
// here; lifecycle endpoints drive all status changes.
type MachineDetailsRequest struct {
	Type             string    `json:"type"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	SerialNumber     string    `json:"serial_number"`
	AcquisitionDate  time.Time `json:"acquisition_date"`
	AcquisitionValue float64   `json:"acquisition_value"`
	UsefulLifeHours  float64   `json:"useful_life_hours"`
	Location         string    `json:"location"`
}

func (r MachineDetailsRequest) ToDetails() entities.MachineDetails {
	return entities.MachineDetails{
		Type:             r.Type,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		SerialNumber:     r.SerialNumber,
		AcquisitionDate:  r.AcquisitionDate,
		AcquisitionValue: r.AcquisitionValue,
		UsefulLifeHours:  r.UsefulLifeHours,
		Location:         r.Location,
	}
}

type HourMeterRequest struct {
	HourMeter *float64 `json:"hour_meter" binding:"required"`
}

type LocationRequest struct {
	Location string `json:"location" binding:"required"`
}
