package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"finbook/internal/domain/user"
)

// Client implements user.IdentityProvider against Firebase Auth. Credentials
// live with Firebase; this system only mirrors the UID and email it gets
// back.
type Client struct {
	auth *auth.Client
}

// NewClient initializes a Firebase app from a service-account credentials
// file and returns its Auth client.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Client{auth: authClient}, nil
}

// CreateUser registers a new account with the provider and returns its
// assigned UID. Provider rejections (malformed email, duplicate account)
// come back as-is for the handler to surface.
func (c *Client) CreateUser(ctx context.Context, email, password string) (*user.Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	return &user.Identity{UID: record.UID, Email: record.Email}, nil
}

// GetUserByEmail looks up an existing provider account by email.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*user.Identity, error) {
	record, err := c.auth.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &user.Identity{UID: record.UID, Email: record.Email}, nil
}
