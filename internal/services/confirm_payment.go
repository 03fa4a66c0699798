package services

import (
	"context"
	"fmt"
	"time"

	"parcel-delivery-service/internal/domain"
	"parcel-delivery-service/internal/ports"
)

type ConfirmPaymentRequest struct {
	ParcelID      string
	Email         string
	Amount        int64
	PaymentMethod string
	TransactionID string
}

// PartialWriteError reports that the transaction document was inserted but
// the parcel's payment status was not flipped. The orphaned transaction is
// left in place; there is no compensating delete.
type PartialWriteError struct {
	TransactionID string
	Err           error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("transaction %s recorded but parcel update failed: %v", e.TransactionID, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// ConfirmPayment records a successful payment and marks the paid parcel.
//
// The two writes span two collections and are not atomic: a concurrent
// reader can observe the transaction before the parcel reads as paid, and
// if the parcel update fails the inserted transaction stays behind. Both
// gaps are inherited from the original flow.
func ConfirmPayment(
	ctx context.Context,
	req ConfirmPaymentRequest,
	transactions ports.TransactionRepository,
	parcels ports.ParcelRepository,
) (string, error) {
	tx := &domain.Transaction{
		ParcelID:      req.ParcelID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        domain.TransactionStatusSuccess,
		Date:          time.Now().UTC(),
	}

	id, err := transactions.Insert(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("confirm payment: insert transaction: %w", err)
	}

	if err := parcels.MarkPaid(ctx, req.ParcelID); err != nil {
		return "", &PartialWriteError{TransactionID: id, Err: err}
	}

	return id, nil
}
