package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TransactionStatusSuccess = "success"

// An immutable record of one completed payment, linked to the parcel it
// paid for by the parcel's hex identifier. Amount is in the smallest
// currency unit.
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ParcelID      string             `bson:"parcelId"`
	Email         string             `bson:"email"`
	Amount        int64              `bson:"amount"`
	PaymentMethod string             `bson:"paymentMethod"`
	TransactionID string             `bson:"transactionId"`
	Status        string             `bson:"status"`
	Date          time.Time          `bson:"date"`
}
