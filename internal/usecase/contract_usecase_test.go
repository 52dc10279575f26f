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

func contractFixture(t *testing.T, status entities.ContractStatus) *entities.Contract {
	t.Helper()
	now := time.Now().UTC()
	c, err := entities.NewContract("c-1", "CTR-001", entities.ContractDetails{
		CustomerName: "Construtora Alfa",
		StartDate:    now,
		EndDate:      now.AddDate(0, 6, 0),
		TotalValue:   120000,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Status = status
	return c
}

func TestContractUseCase_Create(t *testing.T) {
	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)

		repo.EXPECT().GetByCode(gomock.Any(), "CTR-001").Return(contractFixture(t, entities.ContractStatusDraft), nil)

		_, err := uc.Create(context.Background(), CreateContractInput{
			Code: "CTR-001",
			Details: entities.ContractDetails{
				CustomerName: "x",
				StartDate:    time.Now(),
				EndDate:      time.Now().AddDate(0, 1, 0),
			},
		})
		if !errors.Is(err, ErrContractCodeExists) {
			t.Fatalf("expected ErrContractCodeExists, got %v", err)
		}
	})

	t.Run("success starts draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)

		repo.EXPECT().GetByCode(gomock.Any(), "CTR-002").Return(nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&entities.Contract{})).DoAndReturn(
			func(_ context.Context, c *entities.Contract) error {
				if c.Status != entities.ContractStatusDraft || c.Code != "CTR-002" {
					t.Fatalf("unexpected contract: %+v", c)
				}
				return nil
			},
		)

		c, err := uc.Create(context.Background(), CreateContractInput{
			Code: "CTR-002",
			Details: entities.ContractDetails{
				CustomerName: "Construtora Beta",
				StartDate:    time.Now(),
				EndDate:      time.Now().AddDate(1, 0, 0),
				TotalValue:   50000,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestContractUseCase_AssignMachine(t *testing.T) {
	t.Run("draft contract rejects assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewContractUseCase(repo, machineRepo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractFixture(t, entities.ContractStatusDraft), nil)
		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusAvailable), nil)

		_, err := uc.AssignMachine(context.Background(), "c-1", AssignMachineInput{MachineID: "m-1", HourlyRate: 250})
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("machine in workshop rejects assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewContractUseCase(repo, machineRepo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractFixture(t, entities.ContractStatusActive), nil)
		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusInWorkshop), nil)

		_, err := uc.AssignMachine(context.Background(), "c-1", AssignMachineInput{MachineID: "m-1", HourlyRate: 250})
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewContractUseCase(repo, machineRepo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractFixture(t, entities.ContractStatusActive), nil)
		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusAvailable), nil)

		_, err := uc.AssignMachine(context.Background(), "c-1", AssignMachineInput{MachineID: "m-1", HourlyRate: -1})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("success persists both aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewContractUseCase(repo, machineRepo)

		machine := machineFixture(t, entities.MachineStatusAvailable)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractFixture(t, entities.ContractStatusActive), nil)
		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machine, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&entities.Contract{})).DoAndReturn(
			func(_ context.Context, c *entities.Contract) error {
				if len(c.Assignments) != 1 || c.Assignments[0].MachineID != "m-1" {
					t.Fatalf("unexpected assignments: %+v", c.Assignments)
				}
				return nil
			},
		)
		machineRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&entities.Machine{})).DoAndReturn(
			func(_ context.Context, m *entities.Machine) error {
				if m.Status != entities.MachineStatusInContract {
					t.Fatalf("expected IN_CONTRACT, got %s", m.Status)
				}
				return nil
			},
		)

		c, err := uc.AssignMachine(context.Background(), "c-1", AssignMachineInput{MachineID: "m-1", HourlyRate: 250})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Assignments[0].HourlyRate != 250 {
			t.Fatalf("unexpected rate: %v", c.Assignments[0].HourlyRate)
		}
	})
}

func TestContractUseCase_ReleaseMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
	uc := NewContractUseCase(repo, machineRepo)

	c := contractFixture(t, entities.ContractStatusActive)
	a, err := entities.NewAssignment("a-1", c.ID, "m-1", 250, 0, 0, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddAssignment(*a, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
	machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusInContract), nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	machineRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&entities.Machine{})).DoAndReturn(
		func(_ context.Context, m *entities.Machine) error {
			if m.Status != entities.MachineStatusAvailable {
				t.Fatalf("expected AVAILABLE, got %s", m.Status)
			}
			return nil
		},
	)

	got, err := uc.ReleaseMachine(context.Background(), "c-1", "m-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %d", len(got.Assignments))
	}
}

func TestContractUseCase_CompleteReleasesMachines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
	uc := NewContractUseCase(repo, machineRepo)

	c := contractFixture(t, entities.ContractStatusActive)
	for _, machineID := range []string{"m-1", "m-2"} {
		a, err := entities.NewAssignment("a-"+machineID, c.ID, machineID, 100, 0, 0, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.AddAssignment(*a, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	machineRepo.EXPECT().UpdateStatus(gomock.Any(), "m-1", entities.MachineStatusAvailable).Return(nil)
	machineRepo.EXPECT().UpdateStatus(gomock.Any(), "m-2", entities.MachineStatusAvailable).Return(nil)

	got, err := uc.Complete(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.ContractStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", got.Status)
	}
}

func TestContractUseCase_LogWorkedHours(t *testing.T) {
	t.Run("machine not assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractFixture(t, entities.ContractStatusActive), nil)

		_, err := uc.LogWorkedHours(context.Background(), "c-1", "m-9", 10)
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("income and margin recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)

		c := contractFixture(t, entities.ContractStatusActive)
		a, err := entities.NewAssignment("a-1", c.ID, "m-1", 200, 0, 50, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.AddAssignment(*a, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.LogWorkedHours(context.Background(), "c-1", "m-1", 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updated := got.FindAssignmentByMachineID("m-1")
		if updated.GeneratedIncome != 1600 {
			t.Fatalf("expected income 1600, got %v", updated.GeneratedIncome)
		}
		if updated.Margin != 1550 {
			t.Fatalf("expected margin 1550, got %v", updated.Margin)
		}
		if got.TotalMargin() != 1550 {
			t.Fatalf("expected total margin 1550, got %v", got.TotalMargin())
		}
	})
}
