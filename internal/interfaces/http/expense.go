package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"finbook/internal/domain/expense"
)

type ExpenseHandler struct {
	expenses expense.Repository
}

func NewExpenseHandler(expenses expense.Repository) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Request DTOs. Pointer fields so absent and present-but-zero are
// distinguishable; the store validator decides what is required.

type CreateExpenseRequest struct {
	UserID     *string  `json:"userId"`
	DateBought *Date    `json:"dateBought"`
	ItemBought *string  `json:"itemBought"`
	Amount     *float64 `json:"amount"`
	Note       *string  `json:"note"`
}

type UpdateExpenseRequest struct {
	DateBought *Date    `json:"dateBought"`
	ItemBought *string  `json:"itemBought"`
	Amount     *float64 `json:"amount"`
	Note       *string  `json:"note"`
}

// HandleExpenses serves the collection route (creation).
func (h *ExpenseHandler) HandleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleExpenseByID serves the single-segment route. The segment is a userId
// for GET and an expenseId for PUT/DELETE, matching the API this replaces.
func (h *ExpenseHandler) HandleExpenseByID(w http.ResponseWriter, r *http.Request) {
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

func (h *ExpenseHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create expense request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := expense.CreateExpenseParams{
		UserID:     req.UserID,
		DateBought: dateToTime(req.DateBought),
		ItemBought: req.ItemBought,
		Amount:     req.Amount,
		Note:       req.Note,
	}

	created, err := h.expenses.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating expense: %v", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *ExpenseHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	expenses, err := h.expenses.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing expenses for user %s: %v", userID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// An unused userId yields an empty array, not an error.
	respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) handleUpdate(w http.ResponseWriter, r *http.Request, expenseID string) {
	var req UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update expense request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := expense.UpdateExpenseParams{
		DateBought: dateToTime(req.DateBought),
		ItemBought: req.ItemBought,
		Amount:     req.Amount,
		Note:       req.Note,
	}

	updated, err := h.expenses.Update(r.Context(), expenseID, params)
	if err != nil {
		log.Printf("Error updating expense %s: %v", expenseID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown id: the store updated nothing, which is a 200 with a null
	// body here, not a 404.
	respondJSON(w, http.StatusOK, updated)
}

func (h *ExpenseHandler) handleDelete(w http.ResponseWriter, r *http.Request, expenseID string) {
	if err := h.expenses.Delete(r.Context(), expenseID); err != nil {
		log.Printf("Error deleting expense %s: %v", expenseID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func dateToTime(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
