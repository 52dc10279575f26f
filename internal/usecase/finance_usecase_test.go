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

func contractWithAssignments(t *testing.T, id string, assignments ...entities.MachineAssignment) entities.Contract {
	t.Helper()
	now := time.Now().UTC()
	c, err := entities.NewContract(id, "CTR-"+id, entities.ContractDetails{
		CustomerName: "Construtora Alfa",
		StartDate:    now,
		EndDate:      now.AddDate(1, 0, 0),
		TotalValue:   100000,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Activate(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range assignments {
		if err := c.AddAssignment(a, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return *c
}

func assignmentFixture(t *testing.T, machineID string, rate, hours, cost float64) entities.MachineAssignment {
	t.Helper()
	a, err := entities.NewAssignment("a-"+machineID, "c-1", machineID, rate, hours, cost, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return *a
}

func TestFinanceUseCase_CalculateMachineProfitability(t *testing.T) {
	t.Run("machine not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewFinanceUseCase(machineRepo, nil)

		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(nil, nil)

		_, err := uc.CalculateMachineProfitability(context.Background(), "m-1")
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("sums across contracts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewFinanceUseCase(machineRepo, contractRepo)

		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusInContract), nil)
		contractRepo.EXPECT().List(gomock.Any()).Return([]entities.Contract{
			contractWithAssignments(t, "c-1",
				assignmentFixture(t, "m-1", 200, 10, 300), // income 2000, cost 300
				assignmentFixture(t, "m-2", 500, 4, 0),    // other machine, ignored
			),
			contractWithAssignments(t, "c-2",
				assignmentFixture(t, "m-1", 100, 5, 100), // income 500, cost 100
			),
		}, nil)

		got, err := uc.CalculateMachineProfitability(context.Background(), "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalIncome != 2500 || got.TotalMaintenanceCost != 400 {
			t.Fatalf("unexpected sums: %+v", got)
		}
		if got.Margin != 2100 {
			t.Fatalf("expected margin 2100, got %v", got.Margin)
		}
		if got.ROI != 2100.0/2500.0 {
			t.Fatalf("unexpected roi: %v", got.ROI)
		}
	})

	t.Run("zero income yields zero roi", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewFinanceUseCase(machineRepo, contractRepo)

		machineRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(machineFixture(t, entities.MachineStatusAvailable), nil)
		contractRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.CalculateMachineProfitability(context.Background(), "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ROI != 0 || got.TotalIncome != 0 {
			t.Fatalf("expected zeroed result, got %+v", got)
		}
	})
}

func TestFinanceUseCase_CalculateContractMargin(t *testing.T) {
	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewFinanceUseCase(nil, contractRepo)

		contractRepo.EXPECT().GetByID(gomock.Any(), "c-9").Return(nil, nil)

		_, err := uc.CalculateContractMargin(context.Background(), "c-9")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("margin and percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewFinanceUseCase(nil, contractRepo)

		c := contractWithAssignments(t, "c-1",
			assignmentFixture(t, "m-1", 200, 10, 300), // margin 1700
			assignmentFixture(t, "m-2", 100, 10, 200), // margin 800
		)
		contractRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(&c, nil)

		got, err := uc.CalculateContractMargin(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalMargin != 2500 {
			t.Fatalf("expected total margin 2500, got %v", got.TotalMargin)
		}
		if got.MarginPercentage != 2.5 {
			t.Fatalf("expected 2.5%%, got %v", got.MarginPercentage)
		}
	})

	t.Run("zero contract value yields zero percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewFinanceUseCase(nil, contractRepo)

		c := contractWithAssignments(t, "c-1", assignmentFixture(t, "m-1", 200, 10, 0))
		c.TotalValue = 0
		contractRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(&c, nil)

		got, err := uc.CalculateContractMargin(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MarginPercentage != 0 {
			t.Fatalf("expected 0, got %v", got.MarginPercentage)
		}
		if got.TotalMargin != 2000 {
			t.Fatalf("expected total margin 2000, got %v", got.TotalMargin)
		}
	})
}

func TestFinanceUseCase_CalculateFleetAvailability(t *testing.T) {
	t.Run("empty fleet short-circuits to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewFinanceUseCase(machineRepo, nil)

		machineRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.CalculateFleetAvailability(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalMachines != 0 || got.AvailableMachines != 0 || got.AvailabilityPercentage != 0 {
			t.Fatalf("expected zeroed result, got %+v", got)
		}
	})

	t.Run("workshop and inactive excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewFinanceUseCase(machineRepo, nil)

		machineRepo.EXPECT().List(gomock.Any()).Return([]entities.Machine{
			{ID: "m-1", Status: entities.MachineStatusAvailable},
			{ID: "m-2", Status: entities.MachineStatusInContract},
			{ID: "m-3", Status: entities.MachineStatusInTransfer},
			{ID: "m-4", Status: entities.MachineStatusInWorkshop},
			{ID: "m-5", Status: entities.MachineStatusInactive},
		}, nil)

		got, err := uc.CalculateFleetAvailability(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalMachines != 5 || got.AvailableMachines != 3 {
			t.Fatalf("unexpected counts: %+v", got)
		}
		if got.AvailabilityPercentage != 60 {
			t.Fatalf("expected 60%%, got %v", got.AvailabilityPercentage)
		}
	})
}
