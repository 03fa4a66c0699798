package repositories

import (
	"context"
	"fmt"

	"parcel-delivery-service/internal/domain"
	"parcel-delivery-service/internal/platform/obs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The original deployment named this collection in the singular.
const TransactionCollection = "transaction"

// Mongo-backed implementation of the TransactionRepository port.
// The collection is append-only: nothing in this repository updates or
// removes documents.
type MongoTransactionRepository struct{ col *mongo.Collection }

func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{col: db.Collection(TransactionCollection)}
}

func (m *MongoTransactionRepository) List(ctx context.Context, email string) (_ []*domain.Transaction, err error) {
	defer obs.Time(ctx, "transactions.list")(&err)

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list transactions: query transaction collection: %w", err)
	}
	defer cur.Close(ctx)

	txs := make([]*domain.Transaction, 0, 16)
	for cur.Next(ctx) {
		var t domain.Transaction
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("list transactions: decode document: %w", err)
		}
		txs = append(txs, &t)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: cursor iteration: %w", err)
	}

	return txs, nil
}

func (m *MongoTransactionRepository) Insert(ctx context.Context, t *domain.Transaction) (_ string, err error) {
	defer obs.Time(ctx, "transactions.insert")(&err)

	res, err := m.col.InsertOne(ctx, t)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert transaction: unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}
