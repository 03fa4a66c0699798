package main

import (
	"context"
	"log"
	"time"

	"parcel-delivery-service/internal/adapters/repositories"
	"parcel-delivery-service/internal/config"
	"parcel-delivery-service/internal/domain"
	"parcel-delivery-service/internal/platform/db"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// dbtool pings the store and seeds demo parcels so local runs have data.
// Seeding is skipped when the parcels collection is not empty.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	uri := config.Get("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.Get("DB_NAME", "parcelDB")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, uri)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Println("Store reachable.")

	if err := seedParcels(ctx, client.Database(dbName)); err != nil {
		log.Fatal(err)
	}
}

func seedParcels(ctx context.Context, database *mongo.Database) error {
	col := database.Collection(repositories.ParcelCollection)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("Seeding skipped: %d parcels already present.", n)
		return nil
	}

	log.Println("Seeding demo parcels...")

	now := time.Now().UTC()
	payloads := []map[string]any{
		{"created_by": "demo@parcel.test", "title": "Books", "weight_kg": 1.2, "cost": 500},
		{"created_by": "demo@parcel.test", "title": "Laptop", "weight_kg": 2.0, "cost": 1500},
		{"created_by": "other@parcel.test", "title": "Documents", "weight_kg": 0.3, "cost": 200},
	}

	repo := repositories.NewMongoParcelRepository(database)
	for i, payload := range payloads {
		// Staggered timestamps so newest-first ordering is visible.
		p := domain.NewParcel(payload, now.Add(time.Duration(i)*time.Second))
		if _, err := repo.Create(ctx, p); err != nil {
			return err
		}
	}

	log.Println("Seeding complete.")
	return nil
}
