package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parcel-delivery-service/internal/adapters/repositories"
	"parcel-delivery-service/internal/domain"
)

func newTransactionHandler() (*TransactionHandler, *repositories.MemoryParcelRepository, *repositories.MemoryTransactionRepository) {
	parcels := repositories.NewMemoryParcelRepository()
	transactions := repositories.NewMemoryTransactionRepository()
	return &TransactionHandler{Transactions: transactions, Parcels: parcels}, parcels, transactions
}

func TestTransactionConfirmSuccess(t *testing.T) {
	h, parcels, _ := newTransactionHandler()

	parcelID := createParcel(t, parcels, "a@x.com", time.Now())

	body := fmt.Sprintf(
		`{"parcelId":%q,"email":"a@x.com","amount":500,"paymentMethod":"card","transactionId":"tx1"}`,
		parcelID,
	)

	rec := httptest.NewRecorder()
	h.Confirm(rec, httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}

	var res struct {
		InsertedID string `json:"insertedId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.InsertedID == "" {
		t.Fatal("expected an insertedId")
	}
}

func TestTransactionConfirmMissingParcelIs400(t *testing.T) {
	h, _, transactions := newTransactionHandler()

	body := `{"parcelId":"64f000000000000000000000","email":"b@x.com","amount":900,"paymentMethod":"card","transactionId":"tx2"}`

	rec := httptest.NewRecorder()
	h.Confirm(rec, httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	// the orphaned transaction document survives the failed confirmation
	txs, err := transactions.List(context.Background(), "b@x.com")
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected the orphaned transaction to persist, got %d", len(txs))
	}
}

func TestTransactionConfirmValidation(t *testing.T) {
	h, _, _ := newTransactionHandler()

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"unknown field", `{"parcelId":"x","email":"a@x.com","amount":1,"bogus":true}`},
		{"missing parcelId", `{"email":"a@x.com","amount":1}`},
		{"missing email", `{"parcelId":"64f000000000000000000000","amount":1}`},
		{"non-positive amount", `{"parcelId":"64f000000000000000000000","email":"a@x.com","amount":0}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Confirm(rec, httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(tc.body)))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestTransactionListFilterAndOrder(t *testing.T) {
	h, _, transactions := newTransactionHandler()

	ctx := context.Background()
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	for i, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		_, err := transactions.Insert(ctx, &domain.Transaction{
			ParcelID:      fmt.Sprintf("64f00000000000000000000%d", i),
			Email:         email,
			Amount:        int64(100 * (i + 1)),
			Status:        domain.TransactionStatusSuccess,
			Date:          base.Add(time.Duration(i) * time.Minute),
			TransactionID: fmt.Sprintf("tx%d", i),
		})
		if err != nil {
			t.Fatalf("insert transaction: %v", err)
		}
	}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/transactions?email=a@x.com", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res []struct {
		Email string    `json:"email"`
		Date  time.Time `json:"date"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 transactions for a@x.com, got %d", len(res))
	}
	for _, tx := range res {
		if tx.Email != "a@x.com" {
			t.Errorf("email = %q, want a@x.com", tx.Email)
		}
	}
	if res[0].Date.Before(res[1].Date) {
		t.Error("transactions not in newest-first order")
	}
}
