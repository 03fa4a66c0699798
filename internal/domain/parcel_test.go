package domain

import (
	"testing"
	"time"
)

func TestNewParcelDefaults(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	payload := map[string]any{
		"created_by": "a@x.com",
		"weight_kg":  2.5,
		"region":     "north",
	}

	p := NewParcel(payload, now)

	if p.CreatedBy != "a@x.com" {
		t.Fatalf("CreatedBy = %q, want %q", p.CreatedBy, "a@x.com")
	}
	if p.PaymentStatus != PaymentStatusUnpaid {
		t.Fatalf("PaymentStatus = %q, want %q", p.PaymentStatus, PaymentStatusUnpaid)
	}
	if !p.CreationDate.Equal(now) {
		t.Fatalf("CreationDate = %v, want %v", p.CreationDate, now)
	}

	if v, ok := p.Extra["weight_kg"]; !ok || v != 2.5 {
		t.Errorf("Extra[weight_kg] = %v, want 2.5", v)
	}
	if v, ok := p.Extra["region"]; !ok || v != "north" {
		t.Errorf("Extra[region] = %v, want north", v)
	}
	if _, ok := p.Extra["created_by"]; ok {
		t.Error("created_by must not be duplicated into Extra")
	}
}

func TestNewParcelStatusOverride(t *testing.T) {
	now := time.Now()

	p := NewParcel(map[string]any{"payment_status": "paid"}, now)
	if p.PaymentStatus != PaymentStatusPaid {
		t.Fatalf("PaymentStatus = %q, want %q", p.PaymentStatus, PaymentStatusPaid)
	}
}

func TestNewParcelIgnoresStoreOwnedFields(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	payload := map[string]any{
		"_id":           "000000000000000000000001",
		"creation_date": "2020-01-01T00:00:00Z",
	}

	p := NewParcel(payload, now)

	if !p.ID.IsZero() {
		t.Errorf("ID = %v, want zero", p.ID)
	}
	if !p.CreationDate.Equal(now) {
		t.Errorf("CreationDate = %v, want server clock %v", p.CreationDate, now)
	}
	if len(p.Extra) != 0 {
		t.Errorf("Extra = %v, want empty", p.Extra)
	}
}
