package expense

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a single purchase record. userId is a plain string reference to
// the user mirror; the store does not enforce it. Fields other than the id
// and userId are pointers because a replace-style update writes null for any
// field the request omitted, and those nulls round-trip to JSON null.
type Expense struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	DateBought *time.Time         `bson:"dateBought" json:"dateBought"`
	ItemBought *string            `bson:"itemBought" json:"itemBought"`
	Amount     *float64           `bson:"amount" json:"amount"`
	Note       *string            `bson:"note,omitempty" json:"note,omitempty"`
}

// CreateExpenseParams carries the request body verbatim. Nil fields are not
// written to the store, so required-field enforcement is left entirely to the
// collection validator.
type CreateExpenseParams struct {
	UserID     *string
	DateBought *time.Time
	ItemBought *string
	Amount     *float64
	Note       *string
}

// UpdateExpenseParams names every updatable field. All of them are written on
// update, nil ones as null. userId is deliberately absent.
type UpdateExpenseParams struct {
	DateBought *time.Time
	ItemBought *string
	Amount     *float64
	Note       *string
}
