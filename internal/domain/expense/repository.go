package expense

import "context"

// Repository defines data access for expense records.
//
// Update returns (nil, nil) when no record matches the id; the HTTP layer
// turns that into a 200 with a null body. Delete is a no-op on an absent id.
type Repository interface {
	Create(ctx context.Context, params CreateExpenseParams) (*Expense, error)
	ListByUserID(ctx context.Context, userID string) ([]*Expense, error)
	Update(ctx context.Context, id string, params UpdateExpenseParams) (*Expense, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
