package usecase

import (
	"context"
	"strings"

	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase/interfaces"
)

// MachineProfitability aggregates income and maintenance cost across every
// assignment of one machine, over all contracts.
type MachineProfitability struct {
	MachineID            string
	TotalIncome          float64
	TotalMaintenanceCost float64
	Margin               float64
	ROI                  float64
}

// ContractMargin aggregates assignment margins for one contract.
type ContractMargin struct {
	ContractID       string
	TotalMargin      float64
	MarginPercentage float64
}

// FleetAvailability is the share of the fleet not held by a workshop visit
// or retirement.
type FleetAvailability struct {
	TotalMachines          int
	AvailableMachines      int
	AvailabilityPercentage float64
}

// IFinanceUseCase computes derived financial metrics. All operations are
// stateless reads over repository-supplied collections; every
// division-by-zero case short-circuits to 0.

type IFinanceUseCase interface {
	CalculateMachineProfitability(ctx context.Context, machineID string) (MachineProfitability, error)
	CalculateContractMargin(ctx context.Context, contractID string) (ContractMargin, error)
	CalculateFleetAvailability(ctx context.Context) (FleetAvailability, error)
}

type FinanceUseCase struct {
	machineRepo  interfaces.IMachineRepository
	contractRepo interfaces.IContractRepository
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(machineRepo interfaces.IMachineRepository, contractRepo interfaces.IContractRepository) *FinanceUseCase {
	return &FinanceUseCase{machineRepo: machineRepo, contractRepo: contractRepo}
}

func (u *FinanceUseCase) CalculateMachineProfitability(ctx context.Context, machineID string) (MachineProfitability, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return MachineProfitability{}, ErrInvalidMachineID
	}
	m, err := u.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return MachineProfitability{}, err
	}
	if m == nil {
		return MachineProfitability{}, ErrMachineNotFound
	}

	contracts, err := u.contractRepo.List(ctx)
	if err != nil {
		return MachineProfitability{}, err
	}

	result := MachineProfitability{MachineID: machineID}
	for i := range contracts {
		for j := range contracts[i].Assignments {
			a := &contracts[i].Assignments[j]
			if a.MachineID != machineID {
				continue
			}
			result.TotalIncome += a.GeneratedIncome
			result.TotalMaintenanceCost += a.MaintenanceCost
		}
	}
	result.Margin = result.TotalIncome - result.TotalMaintenanceCost
	if result.TotalIncome != 0 {
		result.ROI = result.Margin / result.TotalIncome
	}
	return result, nil
}

func (u *FinanceUseCase) CalculateContractMargin(ctx context.Context, contractID string) (ContractMargin, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return ContractMargin{}, ErrInvalidContractID
	}
	c, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return ContractMargin{}, err
	}
	if c == nil {
		return ContractMargin{}, ErrContractNotFound
	}

	result := ContractMargin{
		ContractID:  c.ID,
		TotalMargin: c.TotalMargin(),
	}
	if c.TotalValue != 0 {
		result.MarginPercentage = result.TotalMargin / c.TotalValue * 100
	}
	return result, nil
}

func (u *FinanceUseCase) CalculateFleetAvailability(ctx context.Context) (FleetAvailability, error) {
	machines, err := u.machineRepo.List(ctx)
	if err != nil {
		return FleetAvailability{}, err
	}

	result := FleetAvailability{TotalMachines: len(machines)}
	for i := range machines {
		switch machines[i].Status {
		case entities.MachineStatusInWorkshop, entities.MachineStatusInactive:
		default:
			result.AvailableMachines++
		}
	}
	if result.TotalMachines != 0 {
		result.AvailabilityPercentage = float64(result.AvailableMachines) / float64(result.TotalMachines) * 100
	}
	return result, nil
}
