// Package httperr maps error messages onto HTTP status codes.
//
// Classification is ordered substring matching on the lowercased message.
// That is brittle on purpose: it centralizes the mapping so handlers never
// pattern-match error text themselves, and any rewording of an upstream
// error message changes the status callers observe. Keep rule order intact
// when touching this; the rules overlap and the first match wins.
package httperr

import (
	"net/http"
	"strings"
)

// Status selects the HTTP status code for err. Unrecognized messages map to
// 500; a nil error maps to 200. Never fails.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "token"),
		strings.Contains(msg, "not authenticated"),
		strings.Contains(msg, "user not found"):
		return http.StatusUnauthorized
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "invalid"),
		strings.Contains(msg, "required"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
