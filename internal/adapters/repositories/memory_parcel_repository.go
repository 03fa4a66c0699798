package repositories

import (
	"context"
	"sort"
	"sync"

	"parcel-delivery-service/internal/domain"
	"parcel-delivery-service/internal/ports"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementation of the ParcelRepository port, used by tests in
// place of a running Mongo deployment. Identifiers are real ObjectID hex
// strings so malformed-id handling matches the Mongo adapter.
type MemoryParcelRepository struct {
	mu      sync.Mutex
	parcels map[string]*domain.Parcel
}

func NewMemoryParcelRepository() *MemoryParcelRepository {
	return &MemoryParcelRepository{parcels: make(map[string]*domain.Parcel)}
}

func (m *MemoryParcelRepository) List(ctx context.Context, createdBy string) ([]*domain.Parcel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Parcel, 0, len(m.parcels))
	for _, p := range m.parcels {
		if createdBy != "" && p.CreatedBy != createdBy {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreationDate.After(out[j].CreationDate)
	})

	return out, nil
}

func (m *MemoryParcelRepository) GetByID(ctx context.Context, id string) (*domain.Parcel, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ports.ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.parcels[id]
	if !ok {
		return nil, ports.ErrNotFound
	}

	cp := *p
	return &cp, nil
}

func (m *MemoryParcelRepository) Create(ctx context.Context, p *domain.Parcel) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}

	id := p.ID.Hex()
	cp := *p
	m.parcels[id] = &cp

	return id, nil
}

func (m *MemoryParcelRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ports.ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.parcels[id]; !ok {
		return ports.ErrNotFound
	}

	delete(m.parcels, id)
	return nil
}

func (m *MemoryParcelRepository) MarkPaid(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ports.ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.parcels[id]
	if !ok || p.PaymentStatus == domain.PaymentStatusPaid {
		return ports.ErrNotFound
	}

	p.PaymentStatus = domain.PaymentStatusPaid
	return nil
}
