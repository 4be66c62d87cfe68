package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with. Errors carries the
// per-field validation messages of a 400 and is omitted otherwise.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeOK(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, Response{Status: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, code int, message string, fields any) {
	writeJSON(w, code, Response{Status: false, Message: message, Errors: fields})
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeOK(w, http.StatusOK, message, data)
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeOK(w, http.StatusCreated, message, data)
}

// ResponseBadRequest answers 400. fields is usually the map returned by
// ValidateStruct and may be nil.
func ResponseBadRequest(w http.ResponseWriter, message string, fields any) {
	writeError(w, http.StatusBadRequest, message, fields)
}

// Client errors without field details.

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, message, nil)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, message, nil)
}

func ResponseConflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, message, nil)
}

// ResponseInternalError hides the cause; callers log it before answering.
func ResponseInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, message, nil)
}
