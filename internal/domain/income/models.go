package income

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Income is a single earning record, same lifecycle as an expense: created
// verbatim from the request, replace-style updates, deleted by id.
type Income struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userId" json:"userId"`
	DateReceived   *time.Time         `bson:"dateReceived" json:"dateReceived"`
	AmountReceived *float64           `bson:"amountReceived" json:"amountReceived"`
	Note           *string            `bson:"note,omitempty" json:"note,omitempty"`
}

type CreateIncomeParams struct {
	UserID         *string
	DateReceived   *time.Time
	AmountReceived *float64
	Note           *string
}

type UpdateIncomeParams struct {
	DateReceived   *time.Time
	AmountReceived *float64
	Note           *string
}
