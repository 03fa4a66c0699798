package api

import (
	"net/http"

	"parcel-delivery-service/internal/api/handlers"
	"parcel-delivery-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	parcels ports.ParcelRepository,
	transactions ports.TransactionRepository,
	gateway ports.PaymentGateway,
) http.Handler {
	mux := http.NewServeMux()

	parcelHandler := &handlers.ParcelHandler{Repo: parcels}
	txHandler := &handlers.TransactionHandler{
		Transactions: transactions,
		Parcels:      parcels,
	}
	paymentHandler := &handlers.PaymentHandler{Gateway: gateway}

	mux.HandleFunc("GET /{$}", handlers.Root)

	mux.HandleFunc("GET /parcels", parcelHandler.List)
	mux.HandleFunc("POST /parcels", parcelHandler.Create)
	mux.HandleFunc("GET /parcels/{id}", parcelHandler.Get)
	mux.HandleFunc("DELETE /parcels/{id}", parcelHandler.Delete)

	mux.HandleFunc("GET /transactions", txHandler.List)
	mux.HandleFunc("POST /transactions", txHandler.Confirm)

	mux.HandleFunc("POST /create-payment-intent", paymentHandler.CreateIntent)

	return loggingMiddleware(mux)
}
