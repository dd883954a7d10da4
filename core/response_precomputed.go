package core

import (
	"encoding/json"
	"net/http"
)

// Standard response codes
const (
	CodeErrorTokenGeneration                = "err_token_generation"
	CodeErrorInvalidRequest                 = "err_invalid_input"
	CodeErrorInvalidCredentials             = "err_invalid_credentials"
	CodeErrorPasswordMismatch               = "err_password_mismatch"
	CodeErrorMissingFields                  = "err_missing_fields"
	CodeErrorPasswordComplexity             = "err_password_complexity"
	CodeErrorEmailConflict                  = "err_email_conflict"
	CodeErrorNotFound                       = "err_not_found"
	CodeErrorInvalidContentType             = "err_invalid_content_type"
	CodeErrorInvalidOAuth2Provider          = "err_invalid_oauth2_provider"
	CodeErrorOAuth2TokenExchangeFailed      = "err_oauth2_token_exchange_failed"
	CodeErrorOAuth2UserInfoFailed           = "err_oauth2_user_info_failed"
	CodeErrorOAuth2UserInfoProcessingFailed = "err_oauth2_user_info_processing_failed"
	CodeErrorOAuth2DatabaseError            = "err_oauth2_database_error"
	CodeErrorAuthDatabaseError              = "err_auth_database_error"
	CodeErrorLoginRequired                  = "err_login_required"
	CodeErrorSessionExpired                 = "err_session_expired"
	CodeErrorMovieNotFound                  = "err_movie_not_found"
	CodeErrorMovieLookupFailed              = "err_movie_lookup_failed"
)

// precomputeBasicResponse builds the full JSON body once, during package
// initialization. Handlers then write the stored bytes directly instead of
// marshalling the same response on every request.
func precomputeBasicResponse(status int, code, message string) jsonResponse {
	basic := JsonBasic{
		Status:  status,
		Code:    code,
		Message: message,
	}
	body, _ := json.Marshal(basic)
	return jsonResponse{status: status, body: body}
}

// Precomputed error responses with status codes
var (
	errorTokenGeneration                = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorTokenGeneration, "Failed to establish session")
	errorInvalidRequest                 = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidRequest, "The request contains invalid data")
	errorInvalidCredentials             = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorInvalidCredentials, "Invalid credentials provided")
	errorPasswordMismatch               = precomputeBasicResponse(http.StatusBadRequest, CodeErrorPasswordMismatch, "Password and confirmation do not match")
	errorMissingFields                  = precomputeBasicResponse(http.StatusBadRequest, CodeErrorMissingFields, "Required fields are missing")
	errorPasswordComplexity             = precomputeBasicResponse(http.StatusBadRequest, CodeErrorPasswordComplexity, "Password must be at least 8 characters")
	errorEmailConflict                  = precomputeBasicResponse(http.StatusConflict, CodeErrorEmailConflict, "Email address is already registered")
	errorNotFound                       = precomputeBasicResponse(http.StatusNotFound, CodeErrorNotFound, "Requested resource not found")
	errorInvalidContentType             = precomputeBasicResponse(http.StatusUnsupportedMediaType, CodeErrorInvalidContentType, "Unsupported media type")
	errorInvalidOAuth2Provider          = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidOAuth2Provider, "Invalid OAuth2 provider specified")
	errorOAuth2TokenExchangeFailed      = precomputeBasicResponse(http.StatusBadRequest, CodeErrorOAuth2TokenExchangeFailed, "Failed to exchange OAuth2 token")
	errorOAuth2UserInfoFailed           = precomputeBasicResponse(http.StatusBadRequest, CodeErrorOAuth2UserInfoFailed, "Failed to get user info from OAuth2 provider")
	errorOAuth2UserInfoProcessingFailed = precomputeBasicResponse(http.StatusBadRequest, CodeErrorOAuth2UserInfoProcessingFailed, "Failed to process user info from OAuth2 provider")
	errorOAuth2DatabaseError            = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorOAuth2DatabaseError, "Database error during OAuth2 authentication")
	errorAuthDatabaseError              = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorAuthDatabaseError, "Database error during authentication")
	errorLoginRequired                  = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorLoginRequired, "Login required")
	errorSessionExpired                 = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorSessionExpired, "Session has expired")
	errorMovieNotFound                  = precomputeBasicResponse(http.StatusNotFound, CodeErrorMovieNotFound, "No movie matches the given title")
	errorMovieLookupFailed              = precomputeBasicResponse(http.StatusBadGateway, CodeErrorMovieLookupFailed, "Movie lookup failed")
)

// For successful precomputed responses
func writeJsonOk(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, HeadersJson)
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}

// writeJsonError writes a precomputed JSON error response
func writeJsonError(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, HeadersJson)
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}
