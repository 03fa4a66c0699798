package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"parcel-delivery-service/internal/api/dto"
	"parcel-delivery-service/internal/domain"
	"parcel-delivery-service/internal/ports"
)

// ParcelHandler exposes CRUD endpoints over the parcels collection.
type ParcelHandler struct {
	Repo ports.ParcelRepository
}

func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	parcels, err := h.Repo.List(r.Context(), email)
	if err != nil {
		log.Printf("list parcels failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		res = append(res, parcelResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ParcelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := h.Repo.GetByID(r.Context(), id)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "parcel not found")
		return
	}
	if err != nil {
		log.Printf("get parcel failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, parcelResponse(p))
}

// Create accepts any JSON object as the parcel payload. Only malformed
// JSON is rejected; field validation is deliberately absent.
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	if err := dec.Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	id, err := h.Repo.Create(r.Context(), domain.NewParcel(payload, time.Now().UTC()))
	if err != nil {
		log.Printf("create parcel failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreateParcelResponse{InsertedID: id})
}

func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "parcel not found")
		return
	}
	if err != nil {
		log.Printf("delete parcel failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteParcelResponse{Message: "parcel deleted successfully"})
}

func parcelResponse(p *domain.Parcel) dto.ParcelResponse {
	return dto.ParcelResponse{
		ID:            p.ID.Hex(),
		CreatedBy:     p.CreatedBy,
		CreationDate:  p.CreationDate,
		PaymentStatus: string(p.PaymentStatus),
		Extra:         p.Extra,
	}
}
