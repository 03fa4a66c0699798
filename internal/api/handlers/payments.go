package handlers

import (
	"log"
	"net/http"

	"parcel-delivery-service/internal/api/dto"
	"parcel-delivery-service/internal/ports"
)

// PaymentHandler brokers payment-intent creation with the external
// processor.
type PaymentHandler struct {
	Gateway ports.PaymentGateway
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.AmountParcel <= 0 {
		writeError(w, r, http.StatusBadRequest, "amountParcel must be a positive integer")
		return
	}

	secret, err := h.Gateway.CreatePaymentIntent(r.Context(), req.AmountParcel, "usd")
	if err != nil {
		log.Printf("create payment intent failed: amount=%d err=%v", req.AmountParcel, err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreatePaymentIntentResponse{ClientSecret: secret})
}
