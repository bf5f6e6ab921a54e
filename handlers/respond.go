package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an application error to its HTTP status and a JSON body.
// Unknown errors surface as a generic 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	resp := errorResponse{Message: "server error"}

	var e *apperr.Error
	if errors.As(err, &e) {
		resp.Message = e.Message
		resp.Fields = e.Fields
	}
	if status >= http.StatusInternalServerError {
		log.Println("request failed:", err)
	}
	writeJSON(w, status, resp)
}
