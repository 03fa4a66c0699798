package repositories

import (
	"context"
	"errors"
	"fmt"

	"parcel-delivery-service/internal/domain"
	"parcel-delivery-service/internal/platform/obs"
	"parcel-delivery-service/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ParcelCollection = "parcels"

// Mongo-backed implementation of the ParcelRepository port.
type MongoParcelRepository struct{ col *mongo.Collection }

func NewMongoParcelRepository(db *mongo.Database) *MongoParcelRepository {
	return &MongoParcelRepository{col: db.Collection(ParcelCollection)}
}

// Return parcels sorted by creation_date descending, optionally restricted
// to one creator email.
func (m *MongoParcelRepository) List(ctx context.Context, createdBy string) (_ []*domain.Parcel, err error) {
	defer obs.Time(ctx, "parcels.list")(&err)

	filter := bson.M{}
	if createdBy != "" {
		filter["created_by"] = createdBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "creation_date", Value: -1}})

	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list parcels: query parcels collection: %w", err)
	}
	defer cur.Close(ctx)

	parcels := make([]*domain.Parcel, 0, 16)
	for cur.Next(ctx) {
		var p domain.Parcel
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("list parcels: decode document: %w", err)
		}
		parcels = append(parcels, &p)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list parcels: cursor iteration: %w", err)
	}

	return parcels, nil
}

func (m *MongoParcelRepository) GetByID(ctx context.Context, id string) (_ *domain.Parcel, err error) {
	defer obs.Time(ctx, "parcels.get")(&err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier can never name a document.
		return nil, ports.ErrNotFound
	}

	var p domain.Parcel
	err = m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get parcel %s: %w", id, err)
	}

	return &p, nil
}

func (m *MongoParcelRepository) Create(ctx context.Context, p *domain.Parcel) (_ string, err error) {
	defer obs.Time(ctx, "parcels.create")(&err)

	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create parcel: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("create parcel: unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

func (m *MongoParcelRepository) Delete(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "parcels.delete")(&err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ports.ErrNotFound
	}

	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete parcel %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ports.ErrNotFound
	}

	return nil
}

// MarkPaid requires the update to modify exactly one document, so a second
// confirmation of an already-paid parcel reports failure rather than
// silently succeeding.
func (m *MongoParcelRepository) MarkPaid(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "parcels.markPaid")(&err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ports.ErrNotFound
	}

	update := bson.M{"$set": bson.M{"payment_status": domain.PaymentStatusPaid}}

	res, err := m.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("mark parcel %s paid: %w", id, err)
	}
	if res.ModifiedCount != 1 {
		return ports.ErrNotFound
	}

	return nil
}
