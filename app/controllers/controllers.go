// Package controllers contains the HTTP glue: bind the request, let the
// service authorize and act, map the result to the wire shape.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID parses a numeric URL parameter. Returns 0 for anything that is not
// a number; downstream lookups then fail with not-found.
func pathID(r *http.Request, key string) uint {
	n, _ := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	return uint(n)
}

// firstError pulls one message out of a validation error map.
func firstError(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return "invalid request"
}
