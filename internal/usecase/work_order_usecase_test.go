package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"locamaq/internal/domain/entities"
	mock_interfaces "locamaq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func workOrderFixture(t *testing.T, status entities.WorkOrderStatus, entry time.Time) *entities.WorkOrder {
	t.Helper()
	w, err := entities.NewWorkOrder("wo-1", "m-1", entities.WorkOrderTypeCorrective, "vazamento hidraulico", entry, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Status = status
	return w
}

func TestWorkOrderUseCase_Open(t *testing.T) {
	t.Run("machine not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, machineRepo)

		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(nil, nil)

		_, err := uc.Open(context.Background(), OpenWorkOrderInput{MachineID: "m-1", Type: entities.WorkOrderTypePreventive})
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("machine in contract refuses workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, machineRepo)

		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusInContract), nil)

		_, err := uc.Open(context.Background(), OpenWorkOrderInput{MachineID: "m-1", Type: entities.WorkOrderTypeCorrective})
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success saves order and flips machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, machineRepo)

		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusAvailable), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, w *entities.WorkOrder) error {
				if w.Status != entities.WorkOrderStatusOpen || w.MachineID != "m-1" {
					t.Fatalf("unexpected work order: %+v", w)
				}
				return nil
			},
		)
		machineRepo.EXPECT().UpdateStatus(gomock.Any(), "m-1", entities.MachineStatusInWorkshop).Return(nil)

		w, err := uc.Open(context.Background(), OpenWorkOrderInput{MachineID: "m-1", Type: entities.WorkOrderTypeCorrective, Description: "revisao"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkOrderUseCase_Complete(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("freezes cost and releases machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, machineRepo)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(workOrderFixture(t, entities.WorkOrderStatusInProgress, entry), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusInWorkshop), nil)
		machineRepo.EXPECT().UpdateStatus(gomock.Any(), "m-1", entities.MachineStatusAvailable).Return(nil)

		w, err := uc.Complete(context.Background(), "wo-1", entry.Add(5*time.Hour), 100, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.TotalCost != 150 || w.DowntimeHours != 5 {
			t.Fatalf("unexpected totals: cost=%v downtime=%v", w.TotalCost, w.DowntimeHours)
		}
		if w.Status != entities.WorkOrderStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", w.Status)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		w := workOrderFixture(t, entities.WorkOrderStatusOpen, entry)
		if err := w.Complete(entry.Add(time.Hour), 0, 0, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)

		_, err := uc.Complete(context.Background(), "wo-1", entry.Add(2*time.Hour), 0, 0)
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Cancel(t *testing.T) {
	entry := time.Now().UTC()

	t.Run("open order releases machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, machineRepo)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(workOrderFixture(t, entities.WorkOrderStatusOpen, entry), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusInWorkshop), nil)
		machineRepo.EXPECT().UpdateStatus(gomock.Any(), "m-1", entities.MachineStatusAvailable).Return(nil)

		w, err := uc.Cancel(context.Background(), "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != entities.WorkOrderStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", w.Status)
		}
	})

	t.Run("completed rejects cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		w := workOrderFixture(t, entities.WorkOrderStatusOpen, entry)
		if err := w.Complete(entry.Add(time.Hour), 0, 0, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)

		_, err := uc.Cancel(context.Background(), "wo-1")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Delete(t *testing.T) {
	t.Run("active order protected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(workOrderFixture(t, entities.WorkOrderStatusInProgress, time.Now()), nil)

		err := uc.Delete(context.Background(), "wo-1")
		if !errors.Is(err, ErrWorkOrderNotTerminal) {
			t.Fatalf("expected ErrWorkOrderNotTerminal, got %v", err)
		}
	})

	t.Run("cancelled order deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(workOrderFixture(t, entities.WorkOrderStatusCancelled, time.Now()), nil)
		repo.EXPECT().Delete(gomock.Any(), "wo-1").Return(nil)

		if err := uc.Delete(context.Background(), "wo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Progression(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewWorkOrderUseCase(repo, nil)

	w := workOrderFixture(t, entities.WorkOrderStatusOpen, time.Now())
	repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil).Times(2)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	got, err := uc.StartProgress(context.Background(), "wo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.WorkOrderStatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", got.Status)
	}

	got, err = uc.WaitForParts(context.Background(), "wo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.WorkOrderStatusWaitingParts {
		t.Fatalf("expected WAITING_PARTS, got %s", got.Status)
	}
}
