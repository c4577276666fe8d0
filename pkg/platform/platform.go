// Package platform classifies inbound HTTP requests as originating from the
// mobile app or a generic web client, based on headers set by the clients.
package platform

import (
	"net/http"
	"strings"
)

// Platform labels the client class a request originated from.
type Platform string

const (
	// Mobile marks requests from the mobile app.
	Mobile Platform = "mobile"
	// Web marks every other request.
	Web Platform = "web"
)

const (
	// HeaderPlatform is the primary classification header.
	HeaderPlatform = "X-Platform"
	// HeaderClientType is consulted when HeaderPlatform is absent.
	HeaderClientType = "X-Client-Type"

	mobileToken = "mobile"
)

// IsMobileApp reports whether the request came from the mobile app. It takes
// the first non-empty value of X-Platform then X-Client-Type and matches it
// against "mobile" case-insensitively. If a header is repeated, only its
// first value counts. Absent, empty or unrecognized values classify as not
// mobile; this never fails.
func IsMobileApp(r *http.Request) bool {
	value := r.Header.Get(HeaderPlatform)
	if value == "" {
		value = r.Header.Get(HeaderClientType)
	}
	return strings.ToLower(value) == mobileToken
}

// Detect resolves the request to Mobile or Web.
func Detect(r *http.Request) Platform {
	if IsMobileApp(r) {
		return Mobile
	}
	return Web
}
