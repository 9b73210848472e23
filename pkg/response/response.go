// Package response writes JSON response bodies in the exact shapes the
// pizzeria API speaks. Payload endpoints return the value bare (no envelope);
// confirmations and failures return {"message": "..."}.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/pizzeria/pkg/apperr"
)

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes v with status 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Message writes a {"message": msg} body with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, messageBody{Message: msg})
}

// Unauthorized writes the fixed 401 body used for every token failure.
func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "unauthorized")
}

// Err maps a domain error to its status and message. Errors outside the
// apperr taxonomy become an opaque 500.
func Err(w http.ResponseWriter, err error) {
	status := apperr.StatusOf(err)
	if status == http.StatusInternalServerError {
		Message(w, status, "internal server error")
		return
	}
	Message(w, status, err.Error())
}
