package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
	"github.com/dopagraming/wastewater-records/services"
)

type SectorHandler struct {
	svc *services.SectorService
}

func NewSectorHandler(svc *services.SectorService) *SectorHandler {
	return &SectorHandler{svc: svc}
}

func (h *SectorHandler) List(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sectors)
}

func (h *SectorHandler) Get(w http.ResponseWriter, r *http.Request) {
	sector, err := h.svc.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sector)
}

func (h *SectorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.SectorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	sector, err := h.svc.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sector)
}

func (h *SectorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in services.SectorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	sector, err := h.svc.Update(mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sector)
}

func (h *SectorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "sector deleted successfully"})
}
