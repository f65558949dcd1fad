package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"finbook/internal/domain/user"
)

// UserRepository stores the local mirror of provider accounts. Mirror records
// are insert-only: nothing in this system updates or deletes them.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	ctx, span := startSpan(ctx, "insertOne", usersCollection)
	_, err := r.collection.InsertOne(ctx, u)
	endSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*user.User, error) {
	ctx, span := startSpan(ctx, "findOne", usersCollection)

	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&u)
	endSpan(span, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	ctx, span := startSpan(ctx, "find", usersCollection)
	defer span.End()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
