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
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrInvalidWorkOrderID   = errors.New("invalid work order id")
	ErrWorkOrderNotTerminal = errors.New("work order is not completed or cancelled")
)

// OpenWorkOrderInput carries the fields needed to open a workshop visit.
type OpenWorkOrderInput struct {
	MachineID   string
	Type        entities.WorkOrderType
	Description string
	EntryDate   time.Time
}

// IWorkOrderUseCase exposes workshop operations. Opening an order sends the
// machine to the workshop; completing or cancelling one returns it to the
// available pool. Both sides of each flow are persisted explicitly, the
// aggregates never reference each other in memory.

type IWorkOrderUseCase interface {
	Open(ctx context.Context, input OpenWorkOrderInput) (*entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (*entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	ListByMachineID(ctx context.Context, machineID string) ([]entities.WorkOrder, error)
	StartProgress(ctx context.Context, id string) (*entities.WorkOrder, error)
	WaitForParts(ctx context.Context, id string) (*entities.WorkOrder, error)
	Complete(ctx context.Context, id string, exitDate time.Time, sparePartsCost, laborCost float64) (*entities.WorkOrder, error)
	Cancel(ctx context.Context, id string) (*entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}

type WorkOrderUseCase struct {
	repo        interfaces.IWorkOrderRepository
	machineRepo interfaces.IMachineRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, machineRepo interfaces.IMachineRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, machineRepo: machineRepo}
}

// Open creates the order and moves the machine into the workshop. A machine
// under an active contract refuses the transition and no order is created.
func (u *WorkOrderUseCase) Open(ctx context.Context, input OpenWorkOrderInput) (*entities.WorkOrder, error) {
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
	entry := input.EntryDate
	if entry.IsZero() {
		entry = now
	}
	w, err := entities.NewWorkOrder(uuid.NewString(), m.ID, input.Type, input.Description, entry, now)
	if err != nil {
		return nil, err
	}
	if err := m.SendToWorkshop(now); err != nil {
		return nil, err
	}

	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	if err := u.machineRepo.UpdateStatus(ctx, m.ID, m.Status); err != nil {
		return nil, err
	}
	return w, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (*entities.WorkOrder, error) {
	return u.load(ctx, id)
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

func (u *WorkOrderUseCase) ListByMachineID(ctx context.Context, machineID string) ([]entities.WorkOrder, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return nil, ErrInvalidMachineID
	}
	return u.repo.ListByMachineID(ctx, machineID)
}

func (u *WorkOrderUseCase) StartProgress(ctx context.Context, id string) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(w *entities.WorkOrder, now time.Time) error {
		return w.StartProgress(now)
	})
}

func (u *WorkOrderUseCase) WaitForParts(ctx context.Context, id string) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(w *entities.WorkOrder, now time.Time) error {
		return w.WaitForParts(now)
	})
}

// Complete closes the order and returns the machine to the available pool.
func (u *WorkOrderUseCase) Complete(ctx context.Context, id string, exitDate time.Time, sparePartsCost, laborCost float64) (*entities.WorkOrder, error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := w.Complete(exitDate, sparePartsCost, laborCost, now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	if err := u.releaseMachine(ctx, w.MachineID, now); err != nil {
		return nil, err
	}
	return w, nil
}

// Cancel aborts the order. When the order was still holding the machine in
// the workshop the machine is released as well.
func (u *WorkOrderUseCase) Cancel(ctx context.Context, id string) (*entities.WorkOrder, error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	wasHolding := !w.Terminal()
	now := time.Now().UTC()
	if err := w.Cancel(now); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	if wasHolding {
		if err := u.releaseMachine(ctx, w.MachineID, now); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Delete removes a terminal work order from the history.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	w, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if !w.Terminal() {
		return ErrWorkOrderNotTerminal
	}
	return u.repo.Delete(ctx, w.ID)
}

func (u *WorkOrderUseCase) releaseMachine(ctx context.Context, machineID string, now time.Time) error {
	m, err := u.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMachineNotFound
	}
	if err := m.MarkAvailable(now); err != nil {
		return err
	}
	return u.machineRepo.UpdateStatus(ctx, m.ID, m.Status)
}

func (u *WorkOrderUseCase) load(ctx context.Context, id string) (*entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidWorkOrderID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkOrderNotFound
	}
	return w, nil
}

func (u *WorkOrderUseCase) mutate(ctx context.Context, id string, fn func(w *entities.WorkOrder, now time.Time) error) (*entities.WorkOrder, error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(w, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}
