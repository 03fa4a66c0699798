package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"parcel-delivery-service/internal/api/dto"
	"parcel-delivery-service/internal/ports"
	"parcel-delivery-service/internal/services"
)

// TransactionHandler exposes the transaction log and the confirm-payment
// write, which touches both collections.
type TransactionHandler struct {
	Transactions ports.TransactionRepository
	Parcels      ports.ParcelRepository
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	txs, err := h.Transactions.List(r.Context(), email)
	if err != nil {
		log.Printf("list transactions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		res = append(res, dto.TransactionResponse{
			ID:            t.ID.Hex(),
			ParcelID:      t.ParcelID,
			Email:         t.Email,
			Amount:        t.Amount,
			PaymentMethod: t.PaymentMethod,
			TransactionID: t.TransactionID,
			Status:        t.Status,
			Date:          t.Date,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TransactionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.ParcelID) == "" {
		writeError(w, r, http.StatusBadRequest, "parcelId is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, r, http.StatusBadRequest, "email is required")
		return
	}
	if req.Amount <= 0 {
		writeError(w, r, http.StatusBadRequest, "amount must be positive")
		return
	}

	svcReq := services.ConfirmPaymentRequest{
		ParcelID:      req.ParcelID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}

	id, err := services.ConfirmPayment(r.Context(), svcReq, h.Transactions, h.Parcels)

	var pw *services.PartialWriteError
	if errors.As(err, &pw) {
		log.Printf("confirm payment partial write: parcel=%s tx=%s err=%v", req.ParcelID, pw.TransactionID, err)
		writeError(w, r, http.StatusBadRequest, "transaction recorded but parcel was not updated")
		return
	}
	if err != nil {
		log.Printf("confirm payment failed: parcel=%s err=%v", req.ParcelID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreateTransactionResponse{InsertedID: id})
}
