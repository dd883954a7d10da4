package core

import (
	"net/http"
)

var HeadersJson = map[string]string{

	"Content-Type": "application/json; charset=utf-8",

	// Ensure the browser respects the declared content type strictly.
	// mitigate MIME-type sniffing attacks
	"X-Content-Type-Options": "nosniff",

	// The response must not be stored in any cache, anywhere, under any
	// circumstances. no-store alone is enough to prevent all caching;
	// no-cache and must-revalidate are assurance if something downstream
	// misinterprets no-store.
	"Cache-Control": "no-store, no-cache, must-revalidate",

	// Prevents the response from being embedded in an <iframe>
	"X-Frame-Options": "DENY",

	// frame-ancestors 'none' is the modern replacement for X-Frame-Options:
	// DENY; default-src 'none' asserts the response is never an active
	// document capable of loading resources.
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

// headersStaticHtml defines headers for the HTML entry point pages.
var headersStaticHtml = map[string]string{
	// Requires the cache to revalidate with the origin server before using
	// a cached response, so the latest page is always served.
	"Cache-Control": "public, no-cache",

	"Content-Type":           "text/html; charset=utf-8",
	"X-Content-Type-Options": "nosniff",

	// Only load scripts, styles and images from the same origin.
	"Content-Security-Policy": "default-src 'self'",

	"Referrer-Policy": "strict-origin-when-cross-origin",
}

// setHeaders applies one or more sets of headers to the response writer.
// Headers from later maps overwrite headers from earlier maps on conflict.
func setHeaders(w http.ResponseWriter, headers ...map[string]string) {
	for _, headerMap := range headers {
		for key, value := range headerMap {
			w.Header().Set(key, value)
		}
	}
}
