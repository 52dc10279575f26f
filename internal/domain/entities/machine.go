package entities

import (
	"fmt"
	"strings"
	"time"
)

// MachineStatus represents the lifecycle state of a fleet machine.
//
// Transitions are guarded by the Machine methods below; the status field is
// never written directly outside this package.

type MachineStatus string

const (
	MachineStatusAvailable  MachineStatus = "AVAILABLE"
	MachineStatusInContract MachineStatus = "IN_CONTRACT"
	MachineStatusInWorkshop MachineStatus = "IN_WORKSHOP"
	MachineStatusInTransfer MachineStatus = "IN_TRANSFER"
	MachineStatusInactive   MachineStatus = "INACTIVE"
)

// Machine is a rentable heavy-machinery unit.
//
// Invariants:
//   - HourMeter never decreases across updates.
//   - Status only changes through the guarded transition methods.

type Machine struct {
	ID               string
	Code             string
	Type             string
	Brand            string
	Model            string
	Year             int
	SerialNumber     string
	HourMeter        float64
	AcquisitionDate  time.Time
	AcquisitionValue float64
	UsefulLifeHours  float64
	Status           MachineStatus
	Location         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MachineDetails carries the descriptive fields accepted by UpdateDetails.
// Status is deliberately absent: all status changes go through the guarded
// transition methods.
type MachineDetails struct {
	Type             string
	Brand            string
	Model            string
	Year             int
	SerialNumber     string
	AcquisitionDate  time.Time
	AcquisitionValue float64
	UsefulLifeHours  float64
	Location         string
}

// NewMachine creates a machine in AVAILABLE status.
func NewMachine(id, code string, details MachineDetails, hourMeter float64, now time.Time) (*Machine, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: machine code is required", ErrValidation)
	}
	if hourMeter < 0 {
		return nil, fmt.Errorf("%w: hour meter cannot be negative", ErrValidation)
	}
	if details.UsefulLifeHours < 0 {
		return nil, fmt.Errorf("%w: useful life hours cannot be negative", ErrValidation)
	}
	now = now.UTC()
	return &Machine{
		ID:               id,
		Code:             code,
		Type:             details.Type,
		Brand:            details.Brand,
		Model:            details.Model,
		Year:             details.Year,
		SerialNumber:     details.SerialNumber,
		HourMeter:        hourMeter,
		AcquisitionDate:  details.AcquisitionDate,
		AcquisitionValue: details.AcquisitionValue,
		UsefulLifeHours:  details.UsefulLifeHours,
		Status:           MachineStatusAvailable,
		Location:         details.Location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// UpdateHourMeter sets the cumulative operating-hours reading.
// The reading is monotonically non-decreasing; no upper bound is enforced
// against UsefulLifeHours.
func (m *Machine) UpdateHourMeter(newValue float64, now time.Time) error {
	if newValue < m.HourMeter {
		return fmt.Errorf("%w: hour meter cannot decrease (current %.1f, got %.1f)", ErrValidation, m.HourMeter, newValue)
	}
	m.HourMeter = newValue
	m.touch(now)
	return nil
}

// AssignToContract moves the machine into IN_CONTRACT.
func (m *Machine) AssignToContract(now time.Time) error {
	switch m.Status {
	case MachineStatusInWorkshop:
		return fmt.Errorf("%w: cannot assign machine to contract while in workshop", ErrInvalidTransition)
	case MachineStatusInactive:
		return fmt.Errorf("%w: cannot assign inactive machine to contract", ErrInvalidTransition)
	}
	m.Status = MachineStatusInContract
	m.touch(now)
	return nil
}

// SendToWorkshop moves the machine into IN_WORKSHOP for maintenance.
func (m *Machine) SendToWorkshop(now time.Time) error {
	switch m.Status {
	case MachineStatusInContract:
		return fmt.Errorf("%w: cannot send machine to workshop while in active contract", ErrInvalidTransition)
	case MachineStatusInactive:
		return fmt.Errorf("%w: cannot send inactive machine to workshop", ErrInvalidTransition)
	}
	m.Status = MachineStatusInWorkshop
	m.touch(now)
	return nil
}

// MarkAvailable returns the machine to AVAILABLE after a contract release,
// workshop exit or transfer arrival. Inactive machines must be reactivated
// instead.
func (m *Machine) MarkAvailable(now time.Time) error {
	if m.Status == MachineStatusInactive {
		return fmt.Errorf("%w: cannot mark inactive machine available", ErrInvalidTransition)
	}
	m.Status = MachineStatusAvailable
	m.touch(now)
	return nil
}

// SendToTransfer moves an idle machine into IN_TRANSFER between yards.
func (m *Machine) SendToTransfer(now time.Time) error {
	if m.Status != MachineStatusAvailable {
		return fmt.Errorf("%w: only available machines can be transferred (status %s)", ErrInvalidTransition, m.Status)
	}
	m.Status = MachineStatusInTransfer
	m.touch(now)
	return nil
}

// Deactivate retires the machine from the active fleet.
func (m *Machine) Deactivate(now time.Time) error {
	if m.Status != MachineStatusAvailable {
		return fmt.Errorf("%w: only available machines can be deactivated (status %s)", ErrInvalidTransition, m.Status)
	}
	m.Status = MachineStatusInactive
	m.touch(now)
	return nil
}

// Reactivate brings a retired machine back as AVAILABLE.
func (m *Machine) Reactivate(now time.Time) error {
	if m.Status != MachineStatusInactive {
		return fmt.Errorf("%w: only inactive machines can be reactivated (status %s)", ErrInvalidTransition, m.Status)
	}
	m.Status = MachineStatusAvailable
	m.touch(now)
	return nil
}

// ChangeLocation updates the machine's current yard/site.
func (m *Machine) ChangeLocation(newLocation string, now time.Time) error {
	if m.Status == MachineStatusInactive {
		return fmt.Errorf("%w: cannot change location of inactive machine", ErrInvalidTransition)
	}
	m.Location = strings.TrimSpace(newLocation)
	m.touch(now)
	return nil
}

// UpdateDetails bulk-updates descriptive fields. It never touches status or
// the hour meter.
func (m *Machine) UpdateDetails(details MachineDetails, now time.Time) error {
	if details.UsefulLifeHours < 0 {
		return fmt.Errorf("%w: useful life hours cannot be negative", ErrValidation)
	}
	m.Type = details.Type
	m.Brand = details.Brand
	m.Model = details.Model
	m.Year = details.Year
	m.SerialNumber = details.SerialNumber
	m.AcquisitionDate = details.AcquisitionDate
	m.AcquisitionValue = details.AcquisitionValue
	m.UsefulLifeHours = details.UsefulLifeHours
	if loc := strings.TrimSpace(details.Location); loc != "" {
		m.Location = loc
	}
	m.touch(now)
	return nil
}

func (m *Machine) touch(now time.Time) {
	m.UpdatedAt = now.UTC()
}
