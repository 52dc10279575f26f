package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewAssignment(t *testing.T) {
	t.Run("negative hourly rate", func(t *testing.T) {
		_, err := NewAssignment("a-1", "c-1", "m-1", -10, 0, 0, time.Now())
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative worked hours", func(t *testing.T) {
		_, err := NewAssignment("a-1", "c-1", "m-1", 10, -1, 0, time.Now())
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative maintenance cost", func(t *testing.T) {
		_, err := NewAssignment("a-1", "c-1", "m-1", 10, 0, -1, time.Now())
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing machine id", func(t *testing.T) {
		_, err := NewAssignment("a-1", "c-1", "  ", 10, 0, 0, time.Now())
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("derived fields hold on creation", func(t *testing.T) {
		a, err := NewAssignment("a-1", "c-1", "m-1", 250, 8, 300, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.GeneratedIncome != 2000 {
			t.Fatalf("expected income 2000, got %v", a.GeneratedIncome)
		}
		if a.Margin != 1700 {
			t.Fatalf("expected margin 1700, got %v", a.Margin)
		}
	})
}

func TestAssignment_UpdateWorkedHours(t *testing.T) {
	a, err := NewAssignment("a-1", "c-1", "m-1", 250, 0, 0, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("negative", func(t *testing.T) {
		if err := a.UpdateWorkedHours(-1, time.Now()); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("recomputes income and margin", func(t *testing.T) {
		if err := a.UpdateWorkedHours(12.5, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.GeneratedIncome != 12.5*250 {
			t.Fatalf("expected income %v, got %v", 12.5*250, a.GeneratedIncome)
		}
		if a.Margin != a.GeneratedIncome-a.MaintenanceCost {
			t.Fatalf("margin invariant broken: %+v", a)
		}
	})

	t.Run("cannot decrease", func(t *testing.T) {
		if err := a.UpdateWorkedHours(10, time.Now()); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestAssignment_AddMaintenanceCost(t *testing.T) {
	a, err := NewAssignment("a-1", "c-1", "m-1", 100, 10, 0, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("negative", func(t *testing.T) {
		if err := a.AddMaintenanceCost(-5, time.Now()); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("accumulates and recomputes margin", func(t *testing.T) {
		if err := a.AddMaintenanceCost(150, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := a.AddMaintenanceCost(50, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.MaintenanceCost != 200 {
			t.Fatalf("expected cost 200, got %v", a.MaintenanceCost)
		}
		if a.Margin != 1000-200 {
			t.Fatalf("expected margin 800, got %v", a.Margin)
		}
	})
}
