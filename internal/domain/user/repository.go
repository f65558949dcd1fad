package user

import "context"

// Repository defines data access for the local user mirror.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByUID(ctx context.Context, uid string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// IdentityProvider is the external service that owns credentials. Passwords
// are forwarded to it and never stored locally.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password string) (*Identity, error)
	GetUserByEmail(ctx context.Context, email string) (*Identity, error)
}
