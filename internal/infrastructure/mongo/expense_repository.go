package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbook/internal/domain/expense"
)

type ExpenseRepository struct {
	collection *mongo.Collection
}

func NewExpenseRepository(db *DB) *ExpenseRepository {
	return &ExpenseRepository{collection: db.Collection(expensesCollection)}
}

// Create inserts exactly the fields the caller supplied. Absent fields are
// not written, so a missing required field is rejected by the collection
// validator rather than by handler code.
func (r *ExpenseRepository) Create(ctx context.Context, params expense.CreateExpenseParams) (*expense.Expense, error) {
	doc := bson.M{}
	if params.UserID != nil {
		doc["userId"] = *params.UserID
	}
	if params.DateBought != nil {
		doc["dateBought"] = *params.DateBought
	}
	if params.ItemBought != nil {
		doc["itemBought"] = *params.ItemBought
	}
	if params.Amount != nil {
		doc["amount"] = *params.Amount
	}
	if params.Note != nil {
		doc["note"] = *params.Note
	}

	ctx, span := startSpan(ctx, "insertOne", expensesCollection)
	result, err := r.collection.InsertOne(ctx, doc)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}

	created := &expense.Expense{
		ID:         result.InsertedID.(primitive.ObjectID),
		DateBought: params.DateBought,
		ItemBought: params.ItemBought,
		Amount:     params.Amount,
		Note:       params.Note,
	}
	if params.UserID != nil {
		created.UserID = *params.UserID
	}
	return created, nil
}

func (r *ExpenseRepository) ListByUserID(ctx context.Context, userID string) ([]*expense.Expense, error) {
	ctx, span := startSpan(ctx, "find", expensesCollection)
	defer span.End()

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*expense.Expense, 0)
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	return expenses, nil
}

// Update writes every updatable field, nil ones as null. This reproduces the
// replace-not-merge contract: fields the request omitted are nulled out, not
// preserved. An unknown id is not an error; it returns (nil, nil).
func (r *ExpenseRepository) Update(ctx context.Context, id string, params expense.UpdateExpenseParams) (*expense.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": expenseUpdateDocument(params)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	ctx, span := startSpan(ctx, "findOneAndUpdate", expensesCollection)
	var updated expense.Expense
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	endSpan(span, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	ctx, span := startSpan(ctx, "deleteOne", expensesCollection)
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	endSpan(span, err)
	return err
}

func (r *ExpenseRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, span := startSpan(ctx, "deleteMany", expensesCollection)
	result, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	endSpan(span, err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses for user %s: %w", userID, err)
	}
	return result.DeletedCount, nil
}

func expenseUpdateDocument(params expense.UpdateExpenseParams) bson.M {
	doc := bson.M{
		"dateBought": nil,
		"itemBought": nil,
		"amount":     nil,
		"note":       nil,
	}
	if params.DateBought != nil {
		doc["dateBought"] = *params.DateBought
	}
	if params.ItemBought != nil {
		doc["itemBought"] = *params.ItemBought
	}
	if params.Amount != nil {
		doc["amount"] = *params.Amount
	}
	if params.Note != nil {
		doc["note"] = *params.Note
	}
	return doc
}
