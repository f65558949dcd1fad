package main

import (
	"log"
	"net/http"

	httphandlers "finbook/internal/interfaces/http"
	"finbook/internal/shared/config"
	"finbook/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with
// middleware applied.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Auth
	mux.HandleFunc("/api/auth/signup", deps.AuthHandler.HandleSignup)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)

	// Expenses. The {id} segment is a userId on GET and an expenseId on
	// PUT/DELETE.
	mux.HandleFunc("/api/expenses", deps.ExpenseHandler.HandleExpenses)
	mux.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.HandleExpenseByID)

	// Incomes
	mux.HandleFunc("/api/incomes", deps.IncomeHandler.HandleIncomes)
	mux.HandleFunc("/api/incomes/{id}", deps.IncomeHandler.HandleIncomeByID)

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(mux))

	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
	}

	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		log.Println("TLS security middleware enabled (HSTS)")
	}

	return handler
}
