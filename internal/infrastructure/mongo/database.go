package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var storeTracer = otel.Tracer("finbook.mongo")

const (
	usersCollection    = "users"
	expensesCollection = "expenses"
	incomesCollection  = "incomes"
)

// DB wraps the shared mongo client and the application database. One client
// is opened at startup and reused for the process lifetime; pooling is left
// to the driver.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, dbName string) (*DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(dbName)}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// EnsureCollections creates the three collections with their schema
// validators when missing. Required-field and type enforcement lives here, in
// the store, not in the handlers. Updatable required fields admit null so a
// replace-style update that nulls a field out stays writable.
func (d *DB) EnsureCollections(ctx context.Context) error {
	existing, err := d.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	schemas := map[string]bson.M{
		usersCollection: {
			"bsonType": "object",
			"required": []string{"_id", "email"},
			"properties": bson.M{
				"_id":   bson.M{"bsonType": "string"},
				"email": bson.M{"bsonType": "string"},
			},
		},
		expensesCollection: {
			"bsonType": "object",
			"required": []string{"userId", "dateBought", "itemBought", "amount"},
			"properties": bson.M{
				"userId":     bson.M{"bsonType": "string"},
				"dateBought": bson.M{"bsonType": []string{"date", "null"}},
				"itemBought": bson.M{"bsonType": []string{"string", "null"}},
				"amount":     bson.M{"bsonType": []string{"double", "int", "long", "null"}},
				"note":       bson.M{"bsonType": []string{"string", "null"}},
			},
		},
		incomesCollection: {
			"bsonType": "object",
			"required": []string{"userId", "dateReceived", "amountReceived"},
			"properties": bson.M{
				"userId":         bson.M{"bsonType": "string"},
				"dateReceived":   bson.M{"bsonType": []string{"date", "null"}},
				"amountReceived": bson.M{"bsonType": []string{"double", "int", "long", "null"}},
				"note":           bson.M{"bsonType": []string{"string", "null"}},
			},
		},
	}

	for name, schema := range schemas {
		if present[name] {
			continue
		}
		opts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": schema})
		if err := d.db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	return nil
}

// startSpan opens a trace span for a single store call.
func startSpan(ctx context.Context, operation, collection string) (context.Context, trace.Span) {
	return storeTracer.Start(ctx, "mongo."+operation, trace.WithAttributes(
		attribute.String("db.system", "mongodb"),
		attribute.String("db.operation", operation),
		attribute.String("db.collection", collection),
	))
}

// endSpan records the call outcome and closes the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
