package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mongodb "finbook/internal/infrastructure/mongo"
	"finbook/internal/shared/config"
)

const usage = `Finbook Admin CLI - Management commands for the Finbook API

Usage:
  admin <command> [options]

Commands:
  users   List local mirror users
  purge   Delete all expense and income records for a user

Examples:
  # List mirrored users
  admin users

  # Remove every record belonging to a user
  admin purge --user-id=vqXk93JdR2

  # Run with a custom timeout
  admin purge --user-id=vqXk93JdR2 --timeout=5m
`

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("%s\n", usage)
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "users":
		runUsers(os.Args[2:])
	case "purge":
		runPurge(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Printf("%s\n", usage)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Printf("%s\n", usage)
		os.Exit(1)
	}
}

func runUsers(args []string) {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	timeoutStr := fs.String("timeout", "30s", "Timeout for the operation (e.g., 30s, 5m)")
	fs.Parse(args)

	ctx, db, cancel := connect(*timeoutStr)
	defer cancel()

	users, err := mongodb.NewUserRepository(db).List(ctx)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	fmt.Printf("%d user(s)\n", len(users))
	for _, u := range users {
		fmt.Printf("  %s  %s\n", u.ID, u.Email)
	}
}

func runPurge(args []string) {
	fs := flag.NewFlagSet("purge", flag.ExitOnError)
	userID := fs.String("user-id", "", "User whose records to delete")
	timeoutStr := fs.String("timeout", "5m", "Timeout for the operation (e.g., 30s, 5m)")
	fs.Parse(args)

	if *userID == "" {
		fmt.Println("purge requires --user-id")
		fs.PrintDefaults()
		os.Exit(1)
	}

	ctx, db, cancel := connect(*timeoutStr)
	defer cancel()

	expenses, err := mongodb.NewExpenseRepository(db).DeleteByUserID(ctx, *userID)
	if err != nil {
		log.Fatalf("Failed to delete expenses: %v", err)
	}
	incomes, err := mongodb.NewIncomeRepository(db).DeleteByUserID(ctx, *userID)
	if err != nil {
		log.Fatalf("Failed to delete incomes: %v", err)
	}

	fmt.Printf("Deleted %d expense(s) and %d income(s) for user %s\n", expenses, incomes, *userID)
}

// connect loads config and opens the store connection with an overall
// deadline for the command.
func connect(timeoutStr string) (context.Context, *mongodb.DB, func()) {
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Fatalf("Invalid timeout: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancelCtx := context.WithTimeout(context.Background(), timeout)

	db, err := mongodb.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		cancelCtx()
		log.Fatalf("Failed to connect to store: %v", err)
	}

	cancel := func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		db.Close(closeCtx)
		cancelCtx()
	}

	return ctx, db, cancel
}
