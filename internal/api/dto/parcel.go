package dto

import (
	"encoding/json"
	"time"
)

// ParcelResponse echoes a stored parcel. The opaque caller-supplied fields
// are flattened back into the top-level object, matching the shape the
// caller originally posted.
type ParcelResponse struct {
	ID            string
	CreatedBy     string
	CreationDate  time.Time
	PaymentStatus string
	Extra         map[string]any
}

func (p ParcelResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+4)
	for k, v := range p.Extra {
		out[k] = v
	}

	out["_id"] = p.ID
	out["created_by"] = p.CreatedBy
	out["creation_date"] = p.CreationDate
	out["payment_status"] = p.PaymentStatus

	return json.Marshal(out)
}

type CreateParcelResponse struct {
	InsertedID string `json:"insertedId"`
}

type DeleteParcelResponse struct {
	Message string `json:"message"`
}
