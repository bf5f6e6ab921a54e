package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
	"github.com/dopagraming/wastewater-records/pkg/filestore"
	"github.com/dopagraming/wastewater-records/services"
)

// maxFormMemory bounds the in-memory part of multipart parsing; larger parts
// spill to temp files.
const maxFormMemory = 32 << 20

// CouncilHandler serves council/corporation CRUD. Create and update accept
// multipart form data with up to five word-document attachments.
type CouncilHandler struct {
	svc   *services.CouncilService
	files *filestore.Store
}

func NewCouncilHandler(svc *services.CouncilService, files *filestore.Store) *CouncilHandler {
	return &CouncilHandler{svc: svc, files: files}
}

func (h *CouncilHandler) List(w http.ResponseWriter, r *http.Request) {
	councils, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, councils)
}

func (h *CouncilHandler) Get(w http.ResponseWriter, r *http.Request) {
	council, err := h.svc.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, council)
}

func (h *CouncilHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	council, err := h.svc.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, council)
}

func (h *CouncilHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	council, err := h.svc.Update(mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, council)
}

func (h *CouncilHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "council/company deleted successfully"})
}

// parseForm reads the multipart submission and stores any accepted uploads.
// A rejected file aborts the request before the entity is touched. The mts
// field is always parsed and defaults to empty when absent, which is what
// makes updates replace the stored sequence instead of merging.
func (h *CouncilHandler) parseForm(r *http.Request) (services.CouncilInput, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return services.CouncilInput{}, apperr.Validation("bad multipart form: "+err.Error(), nil)
	}

	in := services.CouncilInput{
		Type:              r.FormValue("type"),
		Name:              r.FormValue("name"),
		Signature:         r.FormValue("signature"),
		Copies:            r.FormValue("copies"),
		YearsOfMonitoring: r.FormValue("yearsofmonitoring"),
		LabName:           r.FormValue("labName"),
		Mts:               []string{},
		Files:             map[string]string{},
	}
	if raw := r.FormValue("mts"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Mts); err != nil {
			return in, apperr.Validation("mts must be a JSON array of strings", map[string]string{"mts": "malformed"})
		}
	}

	for _, field := range models.CouncilFileFields {
		file, header, err := r.FormFile(field)
		if err != nil {
			continue // field not submitted
		}
		filename, err := h.files.Save(field, header.Filename, header.Size, file)
		file.Close()
		if err != nil {
			return in, err
		}
		in.Files[field] = filename
	}
	return in, nil
}
