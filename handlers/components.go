package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
	"github.com/dopagraming/wastewater-records/services"
)

type ComponentHandler struct {
	svc *services.ComponentService
}

func NewComponentHandler(svc *services.ComponentService) *ComponentHandler {
	return &ComponentHandler{svc: svc}
}

func (h *ComponentHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (h *ComponentHandler) Get(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (h *ComponentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ComponentSetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	set, err := h.svc.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func (h *ComponentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in services.ComponentSetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	set, err := h.svc.Update(mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (h *ComponentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "tested component set deleted successfully"})
}
