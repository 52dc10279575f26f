package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locamaq/internal/adapter/http/handlers/mocks"
	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func contractStub(status entities.ContractStatus) *entities.Contract {
	now := time.Now().UTC()
	return &entities.Contract{
		ID:           "c-1",
		Code:         "CTR-001",
		CustomerName: "Construtora Alfa",
		StartDate:    now,
		EndDate:      now.AddDate(1, 0, 0),
		TotalValue:   100000,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestContractHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(`{"code":"CTR-001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input usecase.CreateContractInput) (*entities.Contract, error) {
				if input.Code != "CTR-001" || input.Details.CustomerName != "Construtora Alfa" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return contractStub(entities.ContractStatusDraft), nil
			},
		)

		payload := `{"code":"CTR-001","customer_name":"Construtora Alfa","start_date":"2026-01-01T00:00:00Z","end_date":"2027-01-01T00:00:00Z","total_value":100000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestContractHandler_AssignMachine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing machine id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/machines", h.AssignMachine)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/c-1/machines", bytes.NewBufferString(`{"hourly_rate":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("draft contract maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/machines", h.AssignMachine)

		uc.EXPECT().AssignMachine(gomock.Any(), "c-1", gomock.Any()).Return(nil, entities.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/c-1/machines", bytes.NewBufferString(`{"machine_id":"m-1","hourly_rate":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns contract with assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/machines", h.AssignMachine)

		c := contractStub(entities.ContractStatusActive)
		c.Assignments = []entities.MachineAssignment{{ID: "a-1", ContractID: "c-1", MachineID: "m-1", HourlyRate: 200}}
		uc.EXPECT().AssignMachine(gomock.Any(), "c-1", usecase.AssignMachineInput{MachineID: "m-1", HourlyRate: 200}).Return(c, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/c-1/machines", bytes.NewBufferString(`{"machine_id":"m-1","hourly_rate":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		assignments, _ := body["assignments"].([]any)
		if len(assignments) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestContractHandler_LogWorkedHours(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/machines/:machine_id/worked-hours", h.LogWorkedHours)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/c-1/machines/m-1/worked-hours", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("machine not assigned maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/machines/:machine_id/worked-hours", h.LogWorkedHours)

		uc.EXPECT().LogWorkedHours(gomock.Any(), "c-1", "m-1", 8.0).Return(nil, usecase.ErrMachineNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/c-1/machines/m-1/worked-hours", bytes.NewBufferString(`{"worked_hours":8}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestContractHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("activate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/activate", h.Activate)

		uc.EXPECT().Activate(gomock.Any(), "c-1").Return(contractStub(entities.ContractStatusActive), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/c-1/activate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("complete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/complete", h.Complete)

		uc.EXPECT().Complete(gomock.Any(), "c-9").Return(nil, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/c-9/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapContractError(t *testing.T) {
	if got := mapContractError(usecase.ErrInvalidContractID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapContractError(entities.ErrValidation); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapContractError(usecase.ErrContractNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapContractError(usecase.ErrMachineNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapContractError(usecase.ErrContractCodeExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapContractError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
