package core

import (
	"fmt"
	"net"
	"net/http"
	"net/mail"
	"strings"
)

// ValidateEmail checks if an email address is valid according to RFC 5322.
// Returns nil if valid, or an error describing why the email is invalid.
func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}

// getClientIP extracts the client IP address from the request. When
// proxyHeader names a trusted header (e.g. X-Forwarded-For) its first
// entry wins over the connection address.
func getClientIP(r *http.Request, proxyHeader string) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if proxyHeader != "" {
		if forwarded := r.Header.Get(proxyHeader); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			ip = strings.TrimSpace(parts[0])
		}
	}
	return ip
}

// endpointPath strips the optional "METHOD " prefix from an endpoint
// string, leaving the path for redirects.
func endpointPath(endpoint string) string {
	if _, path, found := strings.Cut(endpoint, " "); found && strings.HasPrefix(path, "/") {
		return path
	}
	return endpoint
}
