package http

import (
	"encoding/json"
	"log"
	"net/http"

	"finbook/internal/domain/income"
)

type IncomeHandler struct {
	incomes income.Repository
}

func NewIncomeHandler(incomes income.Repository) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

type CreateIncomeRequest struct {
	UserID         *string  `json:"userId"`
	DateReceived   *Date    `json:"dateReceived"`
	AmountReceived *float64 `json:"amountReceived"`
	Note           *string  `json:"note"`
}

type UpdateIncomeRequest struct {
	DateReceived   *Date    `json:"dateReceived"`
	AmountReceived *float64 `json:"amountReceived"`
	Note           *string  `json:"note"`
}

func (h *IncomeHandler) HandleIncomes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *IncomeHandler) HandleIncomeByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, r.PathValue("id"))
	case http.MethodPut:
		h.handleUpdate(w, r, r.PathValue("id"))
	case http.MethodDelete:
		h.handleDelete(w, r, r.PathValue("id"))
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *IncomeHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create income request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := income.CreateIncomeParams{
		UserID:         req.UserID,
		DateReceived:   dateToTime(req.DateReceived),
		AmountReceived: req.AmountReceived,
		Note:           req.Note,
	}

	created, err := h.incomes.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating income: %v", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *IncomeHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	incomes, err := h.incomes.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing incomes for user %s: %v", userID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, incomes)
}

func (h *IncomeHandler) handleUpdate(w http.ResponseWriter, r *http.Request, incomeID string) {
	var req UpdateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update income request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := income.UpdateIncomeParams{
		DateReceived:   dateToTime(req.DateReceived),
		AmountReceived: req.AmountReceived,
		Note:           req.Note,
	}

	updated, err := h.incomes.Update(r.Context(), incomeID, params)
	if err != nil {
		log.Printf("Error updating income %s: %v", incomeID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *IncomeHandler) handleDelete(w http.ResponseWriter, r *http.Request, incomeID string) {
	if err := h.incomes.Delete(r.Context(), incomeID); err != nil {
		log.Printf("Error deleting income %s: %v", incomeID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
