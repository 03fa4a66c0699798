package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"parcel-delivery-service/internal/adapters/payment"
	"parcel-delivery-service/internal/adapters/repositories"
	"parcel-delivery-service/internal/api"
	"parcel-delivery-service/internal/config"
	"parcel-delivery-service/internal/platform/db"

	"github.com/joho/godotenv"
)

const databaseName = "parcelDB"

// main is the application composition root.
// It wires concrete adapters (Mongo, Stripe) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "5000")

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if strings.TrimSpace(stripeKey) == "" {
		log.Fatal("STRIPE_SECRET_KEY is required")
	}

	ctx := context.Background()

	client, err := db.Connect(ctx, mongoURI())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Println("Connected to MongoDB")

	database := client.Database(databaseName)
	parcels := repositories.NewMongoParcelRepository(database)
	transactions := repositories.NewMongoTransactionRepository(database)

	gateway, err := payment.NewStripeGateway(stripeKey)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(parcels, transactions, gateway)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// mongoURI prefers an explicit MONGO_URI and otherwise assembles one from
// the DB_USER/DB_PASS/DB_HOST triple the original deployment used.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); strings.TrimSpace(uri) != "" {
		return uri
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := config.Get("DB_HOST", "localhost:27017")

	if user == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}

	return fmt.Sprintf(
		"mongodb://%s:%s@%s",
		url.QueryEscape(user), url.QueryEscape(pass), host,
	)
}
