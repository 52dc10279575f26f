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
	ErrMachineNotFound   = errors.New("machine not found")
	ErrInvalidMachineID  = errors.New("invalid machine id")
	ErrMachineCodeExists = errors.New("machine code already exists")
	ErrMachineInUse      = errors.New("machine is in contract or workshop")
)

// CreateMachineInput carries the fields needed to register a machine.
type CreateMachineInput struct {
	Code      string
	HourMeter float64
	Details   entities.MachineDetails
}

// IMachineUseCase exposes fleet machine operations.

type IMachineUseCase interface {
	Create(ctx context.Context, input CreateMachineInput) (*entities.Machine, error)
	GetByID(ctx context.Context, id string) (*entities.Machine, error)
	GetByCode(ctx context.Context, code string) (*entities.Machine, error)
	List(ctx context.Context) ([]entities.Machine, error)
	UpdateDetails(ctx context.Context, id string, details entities.MachineDetails) (*entities.Machine, error)
	UpdateHourMeter(ctx context.Context, id string, newValue float64) (*entities.Machine, error)
	ChangeLocation(ctx context.Context, id, newLocation string) (*entities.Machine, error)
	Transfer(ctx context.Context, id string) (*entities.Machine, error)
	MarkAvailable(ctx context.Context, id string) (*entities.Machine, error)
	Deactivate(ctx context.Context, id string) (*entities.Machine, error)
	Reactivate(ctx context.Context, id string) (*entities.Machine, error)
	Delete(ctx context.Context, id string) error
}

type MachineUseCase struct {
	repo interfaces.IMachineRepository
}

var _ IMachineUseCase = (*MachineUseCase)(nil)

func NewMachineUseCase(repo interfaces.IMachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

func (u *MachineUseCase) Create(ctx context.Context, input CreateMachineInput) (*entities.Machine, error) {
	code := strings.TrimSpace(input.Code)

	m, err := entities.NewMachine(uuid.NewString(), code, input.Details, input.HourMeter, time.Now())
	if err != nil {
		return nil, err
	}

	// Enforce: unique business code.
	if existing, err := u.repo.GetByCode(ctx, code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrMachineCodeExists
	}

	if err := u.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *MachineUseCase) GetByID(ctx context.Context, id string) (*entities.Machine, error) {
	return u.load(ctx, id)
}

func (u *MachineUseCase) GetByCode(ctx context.Context, code string) (*entities.Machine, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidMachineID
	}
	m, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMachineNotFound
	}
	return m, nil
}

func (u *MachineUseCase) List(ctx context.Context) ([]entities.Machine, error) {
	return u.repo.List(ctx)
}

func (u *MachineUseCase) UpdateDetails(ctx context.Context, id string, details entities.MachineDetails) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.UpdateDetails(details, now)
	})
}

func (u *MachineUseCase) UpdateHourMeter(ctx context.Context, id string, newValue float64) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.UpdateHourMeter(newValue, now)
	})
}

func (u *MachineUseCase) ChangeLocation(ctx context.Context, id, newLocation string) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.ChangeLocation(newLocation, now)
	})
}

func (u *MachineUseCase) Transfer(ctx context.Context, id string) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.SendToTransfer(now)
	})
}

func (u *MachineUseCase) MarkAvailable(ctx context.Context, id string) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.MarkAvailable(now)
	})
}

func (u *MachineUseCase) Deactivate(ctx context.Context, id string) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.Deactivate(now)
	})
}

func (u *MachineUseCase) Reactivate(ctx context.Context, id string) (*entities.Machine, error) {
	return u.mutate(ctx, id, func(m *entities.Machine, now time.Time) error {
		return m.Reactivate(now)
	})
}

// Delete removes a machine from the fleet. Machines currently rented or in
// the workshop are protected; deactivate and release them first.
func (u *MachineUseCase) Delete(ctx context.Context, id string) error {
	m, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	switch m.Status {
	case entities.MachineStatusInContract, entities.MachineStatusInWorkshop:
		return ErrMachineInUse
	}
	return u.repo.Delete(ctx, m.ID)
}

func (u *MachineUseCase) load(ctx context.Context, id string) (*entities.Machine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidMachineID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMachineNotFound
	}
	return m, nil
}

func (u *MachineUseCase) mutate(ctx context.Context, id string, fn func(m *entities.Machine, now time.Time) error) (*entities.Machine, error) {
	m, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(m, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
