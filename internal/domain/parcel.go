package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Represents a single delivery order placed by a customer.
// Beyond the fields the system cares about, a Parcel carries whatever
// delivery/pricing fields the caller supplied at creation time; those ride
// along untouched in Extra and are stored inline with the document.
type Parcel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CreatedBy     string             `bson:"created_by"`
	CreationDate  time.Time          `bson:"creation_date"`
	PaymentStatus PaymentStatus      `bson:"payment_status"`
	Extra         map[string]any     `bson:",inline"`
}

// NewParcel builds a Parcel from a raw request payload. created_by and
// payment_status are lifted out of the payload when present (status defaults
// to unpaid), creation_date is always assigned from the server clock, and
// every other field is kept as opaque payload.
func NewParcel(payload map[string]any, now time.Time) *Parcel {
	p := &Parcel{
		CreationDate:  now,
		PaymentStatus: PaymentStatusUnpaid,
		Extra:         make(map[string]any, len(payload)),
	}

	for k, v := range payload {
		switch k {
		case "_id", "creation_date":
			// store-owned fields; never taken from the caller
		case "created_by":
			if s, ok := v.(string); ok {
				p.CreatedBy = s
			}
		case "payment_status":
			if s, ok := v.(string); ok && s != "" {
				p.PaymentStatus = PaymentStatus(s)
			}
		default:
			p.Extra[k] = v
		}
	}

	return p
}
