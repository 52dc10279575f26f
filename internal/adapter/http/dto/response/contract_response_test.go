package response

import (
	"testing"
	"time"

	"locamaq/internal/domain/entities"
)

func TestFromContract(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Contract{
		ID:           "c-1",
		Code:         "CTR-001",
		CustomerName: "Construtora Alfa",
		StartDate:    now,
		EndDate:      now.AddDate(1, 0, 0),
		TotalValue:   120000,
		MonthlyValue: 10000,
		TermMonths:   12,
		Status:       entities.ContractStatusActive,
		Assignments: []entities.MachineAssignment{{
			ID:              "a-1",
			ContractID:      "c-1",
			MachineID:       "m-1",
			HourlyRate:      250,
			WorkedHours:     10,
			MaintenanceCost: 400,
			GeneratedIncome: 2500,
			Margin:          2100,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromContract(&c)
	if res.ID != "c-1" || res.Code != "CTR-001" || res.Status != "ACTIVE" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.StartDate.Equal(now) || !res.EndDate.Equal(c.EndDate) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if len(res.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(res.Assignments))
	}
	a := res.Assignments[0]
	if a.MachineID != "m-1" || a.GeneratedIncome != 2500 || a.Margin != 2100 {
		t.Fatalf("unexpected assignment mapping: %+v", a)
	}
}

func TestFromContracts_Empty(t *testing.T) {
	res := FromContracts(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}
