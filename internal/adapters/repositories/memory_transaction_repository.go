package repositories

import (
	"context"
	"sort"
	"sync"

	"parcel-delivery-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementation of the TransactionRepository port for tests.
type MemoryTransactionRepository struct {
	mu  sync.Mutex
	txs []*domain.Transaction
}

func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{}
}

func (m *MemoryTransactionRepository) List(ctx context.Context, email string) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Transaction, 0, len(m.txs))
	for _, t := range m.txs {
		if email != "" && t.Email != email {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

func (m *MemoryTransactionRepository) Insert(ctx context.Context, t *domain.Transaction) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}

	cp := *t
	m.txs = append(m.txs, &cp)

	return t.ID.Hex(), nil
}
