package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbook/internal/domain/income"
)

// IncomeRepository mirrors the expense repository over the incomes
// collection; the two record types share no storage beyond living in the
// same database.
type IncomeRepository struct {
	collection *mongo.Collection
}

func NewIncomeRepository(db *DB) *IncomeRepository {
	return &IncomeRepository{collection: db.Collection(incomesCollection)}
}

func (r *IncomeRepository) Create(ctx context.Context, params income.CreateIncomeParams) (*income.Income, error) {
	doc := bson.M{}
	if params.UserID != nil {
		doc["userId"] = *params.UserID
	}
	if params.DateReceived != nil {
		doc["dateReceived"] = *params.DateReceived
	}
	if params.AmountReceived != nil {
		doc["amountReceived"] = *params.AmountReceived
	}
	if params.Note != nil {
		doc["note"] = *params.Note
	}

	ctx, span := startSpan(ctx, "insertOne", incomesCollection)
	result, err := r.collection.InsertOne(ctx, doc)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}

	created := &income.Income{
		ID:             result.InsertedID.(primitive.ObjectID),
		DateReceived:   params.DateReceived,
		AmountReceived: params.AmountReceived,
		Note:           params.Note,
	}
	if params.UserID != nil {
		created.UserID = *params.UserID
	}
	return created, nil
}

func (r *IncomeRepository) ListByUserID(ctx context.Context, userID string) ([]*income.Income, error) {
	ctx, span := startSpan(ctx, "find", incomesCollection)
	defer span.End()

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	incomes := make([]*income.Income, 0)
	if err := cursor.All(ctx, &incomes); err != nil {
		return nil, fmt.Errorf("failed to decode incomes: %w", err)
	}
	return incomes, nil
}

func (r *IncomeRepository) Update(ctx context.Context, id string, params income.UpdateIncomeParams) (*income.Income, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": incomeUpdateDocument(params)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	ctx, span := startSpan(ctx, "findOneAndUpdate", incomesCollection)
	var updated income.Income
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

func (r *IncomeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	ctx, span := startSpan(ctx, "deleteOne", incomesCollection)
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	endSpan(span, err)
	return err
}

func (r *IncomeRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, span := startSpan(ctx, "deleteMany", incomesCollection)
	result, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	endSpan(span, err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete incomes for user %s: %w", userID, err)
	}
	return result.DeletedCount, nil
}

func incomeUpdateDocument(params income.UpdateIncomeParams) bson.M {
	doc := bson.M{
		"dateReceived":   nil,
		"amountReceived": nil,
		"note":           nil,
	}
	if params.DateReceived != nil {
		doc["dateReceived"] = *params.DateReceived
	}
	if params.AmountReceived != nil {
		doc["amountReceived"] = *params.AmountReceived
	}
	if params.Note != nil {
		doc["note"] = *params.Note
	}
	return doc
}
