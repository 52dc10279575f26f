package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"locamaq/internal/adapter/http/handlers/mocks"
	"locamaq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFinanceHandler_MachineProfitability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/finance/machines/:id/profitability", h.MachineProfitability)

		uc.EXPECT().CalculateMachineProfitability(gomock.Any(), "m-9").Return(usecase.MachineProfitability{}, usecase.ErrMachineNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/finance/machines/m-9/profitability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/finance/machines/:id/profitability", h.MachineProfitability)

		uc.EXPECT().CalculateMachineProfitability(gomock.Any(), "m-1").Return(usecase.MachineProfitability{
			MachineID:            "m-1",
			TotalIncome:          2500,
			TotalMaintenanceCost: 400,
			Margin:               2100,
			ROI:                  0.84,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/finance/machines/m-1/profitability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["margin"] != 2100.0 || body["roi"] != 0.84 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestFinanceHandler_ContractMargin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFinanceUseCase(ctrl)
	h := NewFinanceHandler(uc)

	r := gin.New()
	r.GET("/v1/finance/contracts/:id/margin", h.ContractMargin)

	uc.EXPECT().CalculateContractMargin(gomock.Any(), "c-1").Return(usecase.ContractMargin{
		ContractID:       "c-1",
		TotalMargin:      2500,
		MarginPercentage: 2.5,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/finance/contracts/c-1/margin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestFinanceHandler_FleetAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFinanceUseCase(ctrl)
	h := NewFinanceHandler(uc)

	r := gin.New()
	r.GET("/v1/finance/fleet/availability", h.FleetAvailability)

	uc.EXPECT().CalculateFleetAvailability(gomock.Any()).Return(usecase.FleetAvailability{
		TotalMachines:          5,
		AvailableMachines:      3,
		AvailabilityPercentage: 60,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/finance/fleet/availability", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["available_machines"] != 3.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapFinanceError(t *testing.T) {
	if got := mapFinanceError(usecase.ErrInvalidMachineID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFinanceError(usecase.ErrMachineNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFinanceError(usecase.ErrContractNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFinanceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
