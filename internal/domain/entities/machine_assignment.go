package entities

import (
	"fmt"
	"strings"
	"time"
)

// MachineAssignment binds one machine to one contract for a billing period.
//
// Invariants:
//   - HourlyRate, WorkedHours and MaintenanceCost are all >= 0.
//   - GeneratedIncome = WorkedHours * HourlyRate.
//   - Margin = GeneratedIncome - MaintenanceCost.
//
// The derived fields are recomputed on every mutation so persisted snapshots
// always satisfy the equations.

type MachineAssignment struct {
	ID              string
	ContractID      string
	MachineID       string
	HourlyRate      float64
	WorkedHours     float64
	MaintenanceCost float64
	GeneratedIncome float64
	Margin          float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAssignment creates an assignment. Accumulators usually start at zero but
// may carry opening balances when migrating an existing contract.
func NewAssignment(id, contractID, machineID string, hourlyRate, workedHours, maintenanceCost float64, now time.Time) (*MachineAssignment, error) {
	if strings.TrimSpace(machineID) == "" {
		return nil, fmt.Errorf("%w: machine id is required", ErrValidation)
	}
	if hourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate cannot be negative", ErrValidation)
	}
	if workedHours < 0 {
		return nil, fmt.Errorf("%w: worked hours cannot be negative", ErrValidation)
	}
	if maintenanceCost < 0 {
		return nil, fmt.Errorf("%w: maintenance cost cannot be negative", ErrValidation)
	}
	now = now.UTC()
	a := &MachineAssignment{
		ID:              id,
		ContractID:      contractID,
		MachineID:       machineID,
		HourlyRate:      hourlyRate,
		WorkedHours:     workedHours,
		MaintenanceCost: maintenanceCost,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	a.recompute()
	return a, nil
}

// UpdateWorkedHours replaces the cumulative worked-hours counter. The counter
// never decreases, mirroring the machine hour-meter guard.
func (a *MachineAssignment) UpdateWorkedHours(hours float64, now time.Time) error {
	if hours < 0 {
		return fmt.Errorf("%w: worked hours cannot be negative", ErrValidation)
	}
	if hours < a.WorkedHours {
		return fmt.Errorf("%w: worked hours cannot decrease (current %.1f, got %.1f)", ErrValidation, a.WorkedHours, hours)
	}
	a.WorkedHours = hours
	a.recompute()
	a.UpdatedAt = now.UTC()
	return nil
}

// AddMaintenanceCost accumulates maintenance spend attributed to this
// assignment.
func (a *MachineAssignment) AddMaintenanceCost(cost float64, now time.Time) error {
	if cost < 0 {
		return fmt.Errorf("%w: maintenance cost cannot be negative", ErrValidation)
	}
	a.MaintenanceCost += cost
	a.recompute()
	a.UpdatedAt = now.UTC()
	return nil
}

func (a *MachineAssignment) recompute() {
	a.GeneratedIncome = a.WorkedHours * a.HourlyRate
	a.Margin = a.GeneratedIncome - a.MaintenanceCost
}
