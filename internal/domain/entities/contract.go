package entities

import (
	"fmt"
	"strings"
	"time"
)

// ContractStatus represents the lifecycle of a rental contract.

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// Contract is the aggregate root for machine assignments: assignments are
// loaded and persisted together with their contract and are only created
// through AddAssignment while the contract is ACTIVE.
//
// Status transitions: DRAFT -> ACTIVE -> COMPLETED, with CANCELLED reachable
// from any state except COMPLETED.

type Contract struct {
	ID           string
	Code         string
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
	TotalValue   float64
	MonthlyValue float64
	TermMonths   int
	Status       ContractStatus
	Description  string
	Assignments  []MachineAssignment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContractDetails carries the fields accepted by NewContract/UpdateDetails.
// Status is deliberately absent: all status changes go through the guarded
// transition methods.
type ContractDetails struct {
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
	TotalValue   float64
	MonthlyValue float64
	TermMonths   int
	Description  string
}

// NewContract creates a contract in DRAFT status.
func NewContract(id, code string, details ContractDetails, now time.Time) (*Contract, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: contract code is required", ErrValidation)
	}
	if strings.TrimSpace(details.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if details.EndDate.Before(details.StartDate) {
		return nil, fmt.Errorf("%w: contract end date cannot precede start date", ErrValidation)
	}
	if details.TotalValue < 0 || details.MonthlyValue < 0 {
		return nil, fmt.Errorf("%w: contract value cannot be negative", ErrValidation)
	}
	if details.TermMonths < 0 {
		return nil, fmt.Errorf("%w: contract term cannot be negative", ErrValidation)
	}
	now = now.UTC()
	return &Contract{
		ID:           id,
		Code:         code,
		CustomerName: strings.TrimSpace(details.CustomerName),
		StartDate:    details.StartDate,
		EndDate:      details.EndDate,
		TotalValue:   details.TotalValue,
		MonthlyValue: details.MonthlyValue,
		TermMonths:   details.TermMonths,
		Status:       ContractStatusDraft,
		Description:  details.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Activate moves a DRAFT contract to ACTIVE. Contracts whose end date is
// already in the past cannot be activated.
func (c *Contract) Activate(now time.Time) error {
	if c.Status != ContractStatusDraft {
		return fmt.Errorf("%w: only draft contracts can be activated (status %s)", ErrInvalidTransition, c.Status)
	}
	if c.EndDate.Before(now) {
		return fmt.Errorf("%w: cannot activate expired contract", ErrInvalidTransition)
	}
	c.Status = ContractStatusActive
	c.touch(now)
	return nil
}

// Complete closes an ACTIVE contract.
func (c *Contract) Complete(now time.Time) error {
	if c.Status != ContractStatusActive {
		return fmt.Errorf("%w: only active contracts can be completed (status %s)", ErrInvalidTransition, c.Status)
	}
	c.Status = ContractStatusCompleted
	c.touch(now)
	return nil
}

// Cancel aborts the contract from any non-terminal state.
func (c *Contract) Cancel(now time.Time) error {
	if c.Status == ContractStatusCompleted {
		return fmt.Errorf("%w: completed contracts cannot be cancelled", ErrInvalidTransition)
	}
	c.Status = ContractStatusCancelled
	c.touch(now)
	return nil
}

// AddAssignment appends a machine assignment. Only ACTIVE contracts accept
// new assignments.
func (c *Contract) AddAssignment(a MachineAssignment, now time.Time) error {
	if c.Status != ContractStatusActive {
		return fmt.Errorf("%w: assignments require an active contract (status %s)", ErrInvalidTransition, c.Status)
	}
	if c.FindAssignmentByMachineID(a.MachineID) != nil {
		return fmt.Errorf("%w: machine %s is already assigned to this contract", ErrValidation, a.MachineID)
	}
	c.Assignments = append(c.Assignments, a)
	c.touch(now)
	return nil
}

// RemoveAssignmentByMachineID releases a machine from the contract and
// returns the removed assignment.
func (c *Contract) RemoveAssignmentByMachineID(machineID string, now time.Time) (*MachineAssignment, error) {
	for i := range c.Assignments {
		if c.Assignments[i].MachineID == machineID {
			removed := c.Assignments[i]
			c.Assignments = append(c.Assignments[:i], c.Assignments[i+1:]...)
			c.touch(now)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("%w: machine %s is not assigned to this contract", ErrValidation, machineID)
}

// FindAssignmentByMachineID returns a pointer into the assignment collection,
// or nil when the machine is not assigned.
func (c *Contract) FindAssignmentByMachineID(machineID string) *MachineAssignment {
	for i := range c.Assignments {
		if c.Assignments[i].MachineID == machineID {
			return &c.Assignments[i]
		}
	}
	return nil
}

// UpdateDetails bulk-updates descriptive fields. It never touches status.
func (c *Contract) UpdateDetails(details ContractDetails, now time.Time) error {
	if strings.TrimSpace(details.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if details.EndDate.Before(details.StartDate) {
		return fmt.Errorf("%w: contract end date cannot precede start date", ErrValidation)
	}
	if details.TotalValue < 0 || details.MonthlyValue < 0 {
		return fmt.Errorf("%w: contract value cannot be negative", ErrValidation)
	}
	if details.TermMonths < 0 {
		return fmt.Errorf("%w: contract term cannot be negative", ErrValidation)
	}
	c.CustomerName = strings.TrimSpace(details.CustomerName)
	c.StartDate = details.StartDate
	c.EndDate = details.EndDate
	c.TotalValue = details.TotalValue
	c.MonthlyValue = details.MonthlyValue
	c.TermMonths = details.TermMonths
	c.Description = details.Description
	c.touch(now)
	return nil
}

// TotalMargin sums the margin of every owned assignment. Pure read.
func (c *Contract) TotalMargin() float64 {
	total := 0.0
	for i := range c.Assignments {
		total += c.Assignments[i].Margin
	}
	return total
}

func (c *Contract) touch(now time.Time) {
	c.UpdatedAt = now.UTC()
}
