package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound   = errors.New("contract not found")
	ErrInvalidContractID  = errors.New("invalid contract id")
	ErrContractCodeExists = errors.New("contract code already exists")
)

// CreateContractInput carries the fields needed to draft a contract.
type CreateContractInput struct {
	Code    string
	Details entities.ContractDetails
}

// AssignMachineInput binds a machine to an active contract.
type AssignMachineInput struct {
	MachineID       string
	HourlyRate      float64
	WorkedHours     float64
	MaintenanceCost float64
}

// IContractUseCase exposes rental contract operations, including the
// cross-aggregate assignment protocol: assigning or releasing a machine
// mutates both the contract aggregate and the machine status, persisted
// one after the other.

type IContractUseCase interface {
	Create(ctx context.Context, input CreateContractInput) (*entities.Contract, error)
	GetByID(ctx context.Context, id string) (*entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	UpdateDetails(ctx context.Context, id string, details entities.ContractDetails) (*entities.Contract, error)
	Activate(ctx context.Context, id string) (*entities.Contract, error)
	Complete(ctx context.Context, id string) (*entities.Contract, error)
	Cancel(ctx context.Context, id string) (*entities.Contract, error)
	AssignMachine(ctx context.Context, contractID string, input AssignMachineInput) (*entities.Contract, error)
	ReleaseMachine(ctx context.Context, contractID, machineID string) (*entities.Contract, error)
	LogWorkedHours(ctx context.Context, contractID, machineID string, hours float64) (*entities.Contract, error)
	LogMaintenanceCost(ctx context.Context, contractID, machineID string, cost float64) (*entities.Contract, error)
}

type ContractUseCase struct {
	repo        interfaces.IContractRepository
	machineRepo interfaces.IMachineRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, machineRepo interfaces.IMachineRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo, machineRepo: machineRepo}
}

func (u *ContractUseCase) Create(ctx context.Context, input CreateContractInput) (*entities.Contract, error) {
	code := strings.TrimSpace(input.Code)

	c, err := entities.NewContract(uuid.NewString(), code, input.Details, time.Now())
	if err != nil {
		return nil, err
	}

	// Enforce: unique business code.
	if existing, err := u.repo.GetByCode(ctx, code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrContractCodeExists
	}

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (*entities.Contract, error) {
	return u.load(ctx, id)
}

func (u *ContractUseCase) List(ctx context.Context) ([]entities.Contract, error) {
	return u.repo.List(ctx)
}

func (u *ContractUseCase) UpdateDetails(ctx context.Context, id string, details entities.ContractDetails) (*entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract, now time.Time) error {
		return c.UpdateDetails(details, now)
	})
}

func (u *ContractUseCase) Activate(ctx context.Context, id string) (*entities.Contract, error) {
	return u.mutate(ctx, id, func(c *entities.Contract, now time.Time) error {
		return c.Activate(now)
	})
}

// Complete closes the contract and returns every assigned machine to the
// available pool.
func (u *ContractUseCase) Complete(ctx context.Context, id string) (*entities.Contract, error) {
	return u.closeAndRelease(ctx, id, func(c *entities.Contract, now time.Time) error {
		return c.Complete(now)
	})
}

// Cancel aborts the contract; assigned machines are released the same way
// completion releases them.
func (u *ContractUseCase) Cancel(ctx context.Context, id string) (*entities.Contract, error) {
	return u.closeAndRelease(ctx, id, func(c *entities.Contract, now time.Time) error {
		return c.Cancel(now)
	})
}

func (u *ContractUseCase) closeAndRelease(ctx context.Context, id string, transition func(c *entities.Contract, now time.Time) error) (*entities.Contract, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := transition(c, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	for i := range c.Assignments {
		if err := u.machineRepo.UpdateStatus(ctx, c.Assignments[i].MachineID, entities.MachineStatusAvailable); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AssignMachine runs the two-step protocol: the machine transitions to
// IN_CONTRACT and the contract gains an assignment; both aggregates are
// persisted.
func (u *ContractUseCase) AssignMachine(ctx context.Context, contractID string, input AssignMachineInput) (*entities.Contract, error) {
	c, err := u.load(ctx, contractID)
	if err != nil {
		return nil, err
	}

	machineID := strings.TrimSpace(input.MachineID)
	if machineID == "" {
		return nil, ErrInvalidMachineID
	}
	m, err := u.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMachineNotFound
	}

	now := time.Now().UTC()
	a, err := entities.NewAssignment(uuid.NewString(), c.ID, m.ID, input.HourlyRate, input.WorkedHours, input.MaintenanceCost, now)
	if err != nil {
		return nil, err
	}
	if err := m.AssignToContract(now); err != nil {
		return nil, err
	}
	if err := c.AddAssignment(*a, now); err != nil {
		return nil, err
	}

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	if err := u.machineRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return c, nil
}

// ReleaseMachine removes the machine's assignment and returns it to the
// available pool.
func (u *ContractUseCase) ReleaseMachine(ctx context.Context, contractID, machineID string) (*entities.Contract, error) {
	c, err := u.load(ctx, contractID)
	if err != nil {
		return nil, err
	}

	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return nil, ErrInvalidMachineID
	}

	now := time.Now().UTC()
	if _, err := c.RemoveAssignmentByMachineID(machineID, now); err != nil {
		return nil, err
	}

	m, err := u.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMachineNotFound
	}
	if err := m.MarkAvailable(now); err != nil {
		return nil, err
	}

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	if err := u.machineRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContractUseCase) LogWorkedHours(ctx context.Context, contractID, machineID string, hours float64) (*entities.Contract, error) {
	return u.mutateAssignment(ctx, contractID, machineID, func(a *entities.MachineAssignment, now time.Time) error {
		return a.UpdateWorkedHours(hours, now)
	})
}

func (u *ContractUseCase) LogMaintenanceCost(ctx context.Context, contractID, machineID string, cost float64) (*entities.Contract, error) {
	return u.mutateAssignment(ctx, contractID, machineID, func(a *entities.MachineAssignment, now time.Time) error {
		return a.AddMaintenanceCost(cost, now)
	})
}

func (u *ContractUseCase) mutateAssignment(ctx context.Context, contractID, machineID string, fn func(a *entities.MachineAssignment, now time.Time) error) (*entities.Contract, error) {
	c, err := u.load(ctx, contractID)
	if err != nil {
		return nil, err
	}

	machineID = strings.TrimSpace(machineID)
	a := c.FindAssignmentByMachineID(machineID)
	if a == nil {
		return nil, ErrMachineNotFound
	}
	if err := fn(a, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContractUseCase) load(ctx context.Context, id string) (*entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) mutate(ctx context.Context, id string, fn func(c *entities.Contract, now time.Time) error) (*entities.Contract, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(c, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
