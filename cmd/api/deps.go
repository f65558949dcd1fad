package main

import (
	"context"
	"fmt"
	"log"

	"finbook/internal/infrastructure/firebase"
	mongodb "finbook/internal/infrastructure/mongo"
	httphandlers "finbook/internal/interfaces/http"
	"finbook/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *mongodb.DB

	// Handlers
	AuthHandler    *httphandlers.AuthHandler
	ExpenseHandler *httphandlers.ExpenseHandler
	IncomeHandler  *httphandlers.IncomeHandler
}

// NewDependencies initializes all application dependencies: the shared store
// client, the identity provider client, repositories, and handlers.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	db, err := mongodb.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, err
	}
	log.Println("Connected to document store")

	if err := db.EnsureCollections(ctx); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to ensure collections: %w", err)
	}

	identity, err := firebase.NewClient(ctx, cfg.Firebase.CredentialsFile)
	if err != nil {
		db.Close(ctx)
		return nil, err
	}
	log.Println("Identity provider client initialized")

	userRepo := mongodb.NewUserRepository(db)
	expenseRepo := mongodb.NewExpenseRepository(db)
	incomeRepo := mongodb.NewIncomeRepository(db)

	return &Dependencies{
		DB:             db,
		AuthHandler:    httphandlers.NewAuthHandler(userRepo, identity),
		ExpenseHandler: httphandlers.NewExpenseHandler(expenseRepo),
		IncomeHandler:  httphandlers.NewIncomeHandler(incomeRepo),
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close(ctx context.Context) {
	if d.DB != nil {
		if err := d.DB.Close(ctx); err != nil {
			log.Printf("Error disconnecting from document store: %v", err)
		}
	}
}
