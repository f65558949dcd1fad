package income

import "context"

// Repository defines data access for income records. Same contract as the
// expense repository: Update returns (nil, nil) for an unknown id and Delete
// never fails on an absent one.
type Repository interface {
	Create(ctx context.Context, params CreateIncomeParams) (*Income, error)
	ListByUserID(ctx context.Context, userID string) ([]*Income, error)
	Update(ctx context.Context, id string, params UpdateIncomeParams) (*Income, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
