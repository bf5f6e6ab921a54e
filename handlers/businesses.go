package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
	"github.com/dopagraming/wastewater-records/services"
)

type BusinessHandler struct {
	svc *services.BusinessService
}

func NewBusinessHandler(svc *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{svc: svc}
}

func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, businesses)
}

func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	business, err := h.svc.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, business)
}

func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.BusinessInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	business, err := h.svc.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, business)
}

func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in services.BusinessInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	business, err := h.svc.Update(mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, business)
}

func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "business deleted successfully"})
}
