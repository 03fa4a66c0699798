package dto

import "time"

type CreateTransactionRequest struct {
	ParcelID      string `json:"parcelId"`
	Email         string `json:"email"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

type CreateTransactionResponse struct {
	InsertedID string `json:"insertedId"`
}

type TransactionResponse struct {
	ID            string    `json:"_id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}
