package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"finbook/internal/domain/income"
)

// MockIncomeRepo implements income.Repository for testing
type MockIncomeRepo struct {
	CreateFunc         func(ctx context.Context, params income.CreateIncomeParams) (*income.Income, error)
	ListByUserIDFunc   func(ctx context.Context, userID string) ([]*income.Income, error)
	UpdateFunc         func(ctx context.Context, id string, params income.UpdateIncomeParams) (*income.Income, error)
	DeleteFunc         func(ctx context.Context, id string) error
	DeleteByUserIDFunc func(ctx context.Context, userID string) (int64, error)
}

func (m *MockIncomeRepo) Create(ctx context.Context, params income.CreateIncomeParams) (*income.Income, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockIncomeRepo) ListByUserID(ctx context.Context, userID string) ([]*income.Income, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return []*income.Income{}, nil
}

func (m *MockIncomeRepo) Update(ctx context.Context, id string, params income.UpdateIncomeParams) (*income.Income, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *MockIncomeRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockIncomeRepo) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func TestHandleIncomes_Create(t *testing.T) {
	handler := NewIncomeHandler(&MockIncomeRepo{
		CreateFunc: func(ctx context.Context, params income.CreateIncomeParams) (*income.Income, error) {
			if params.UserID == nil || *params.UserID != "u1" {
				t.Errorf("params.UserID = %v, want u1", params.UserID)
			}
			if params.DateReceived == nil || !params.DateReceived.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("params.DateReceived = %v, want 2024-02-01", params.DateReceived)
			}
			return &income.Income{
				ID:             primitive.NewObjectID(),
				UserID:         *params.UserID,
				DateReceived:   params.DateReceived,
				AmountReceived: params.AmountReceived,
				Note:           params.Note,
			}, nil
		},
	})

	payload, _ := json.Marshal(map[string]any{
		"userId":         "u1",
		"dateReceived":   "2024-02-01",
		"amountReceived": 2500.0,
		"note":           "salary",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/incomes", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler.HandleIncomes(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}

	var created income.Income
	json.NewDecoder(rr.Body).Decode(&created)
	if created.AmountReceived == nil || *created.AmountReceived != 2500.0 {
		t.Errorf("amountReceived = %v, want 2500", created.AmountReceived)
	}
	if created.Note == nil || *created.Note != "salary" {
		t.Errorf("note = %v, want salary", created.Note)
	}
}

func TestHandleIncomes_CreateStoreRejection(t *testing.T) {
	handler := NewIncomeHandler(&MockIncomeRepo{
		CreateFunc: func(ctx context.Context, params income.CreateIncomeParams) (*income.Income, error) {
			return nil, errors.New("Document failed validation")
		},
	})

	payload, _ := json.Marshal(map[string]any{"userId": "u1"})
	req := httptest.NewRequest(http.MethodPost, "/api/incomes", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler.HandleIncomes(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var resp ErrorResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Error != "Document failed validation" {
		t.Errorf("error = %q, want raw store message", resp.Error)
	}
}

func TestHandleIncomeByID_ListEmpty(t *testing.T) {
	handler := NewIncomeHandler(&MockIncomeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/incomes/unused", nil)
	req.SetPathValue("id", "unused")
	rr := httptest.NewRecorder()
	handler.HandleIncomeByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestHandleIncomeByID_UpdateUnknownIDIsNullSuccess(t *testing.T) {
	handler := NewIncomeHandler(&MockIncomeRepo{
		UpdateFunc: func(ctx context.Context, id string, params income.UpdateIncomeParams) (*income.Income, error) {
			return nil, nil
		},
	})

	payload, _ := json.Marshal(map[string]any{"note": "bonus"})
	req := httptest.NewRequest(http.MethodPut, "/api/incomes/ffffffffffffffffffffffff", bytes.NewReader(payload))
	req.SetPathValue("id", "ffffffffffffffffffffffff")
	rr := httptest.NewRecorder()
	handler.HandleIncomeByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "null" {
		t.Errorf("body = %q, want null", got)
	}
}

func TestHandleIncomeByID_Delete(t *testing.T) {
	deleted := ""
	handler := NewIncomeHandler(&MockIncomeRepo{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodDelete, "/api/incomes/"+id, nil)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	handler.HandleIncomeByID(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if deleted != id {
		t.Errorf("deleted id = %q, want %q", deleted, id)
	}
}
