package api

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform JSON wrapper applied to every catalog response.
// Data is omitted on error shapes; Count is present only on list responses;
// Error is present only on 500 responses (full detail in development,
// an empty object otherwise).
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondList writes a 200 list envelope. data must be a non-nil slice so
// that empty tables serialize as "data": [] with "count": 0.
func respondList(w http.ResponseWriter, message string, data interface{}, count int) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// respondItem writes a 200 single-item envelope (no count field)
func respondItem(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondNotFound writes the 404 envelope for a valid id with no row
func respondNotFound(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusNotFound, envelope{
		Success: false,
		Message: entity + " not found",
	})
}

// respondBadRequest writes the defensive 400 envelope for a malformed id
// that slipped past the validator
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: message,
	})
}

// respondServerError writes the 500 envelope. The error field carries the
// underlying detail only when expose is set; in production it stays an
// empty object so internals never leak to clients.
func respondServerError(w http.ResponseWriter, message string, err error, expose bool) {
	detail := interface{}(map[string]string{})
	if expose && err != nil {
		detail = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
