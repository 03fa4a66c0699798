package ports

import (
	"context"

	"parcel-delivery-service/internal/domain"
)

// Port: a boundary for the append-only payment-transaction log.
type TransactionRepository interface {
	// Retrieve transactions, newest first. An empty email returns all
	// transactions; otherwise only the given payer's.
	List(ctx context.Context, email string) ([]*domain.Transaction, error)

	// Append one transaction and return its store-assigned hex identifier.
	Insert(ctx context.Context, t *domain.Transaction) (string, error)
}
