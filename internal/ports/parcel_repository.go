package ports

import (
	"context"

	"parcel-delivery-service/internal/domain"
)

// Port: a boundary for storing and retrieving Parcel documents.
type ParcelRepository interface {
	// Retrieve parcels, newest first. An empty createdBy returns all
	// parcels; otherwise only parcels created by that email.
	List(ctx context.Context, createdBy string) ([]*domain.Parcel, error)

	// Retrieve one parcel by its hex identifier. Returns ErrNotFound when
	// no document matches; a malformed identifier matches nothing.
	GetByID(ctx context.Context, id string) (*domain.Parcel, error)

	// Persist a new parcel and return its store-assigned hex identifier.
	Create(ctx context.Context, p *domain.Parcel) (string, error)

	// Remove one parcel. Returns ErrNotFound unless exactly one document
	// was removed.
	Delete(ctx context.Context, id string) error

	// Flip a parcel's payment status to paid. Returns ErrNotFound unless
	// exactly one document was modified.
	MarkPaid(ctx context.Context, id string) error
}
