package crypto

import (
	"crypto/sha256"
	"encoding/base64"
)

// Defined in RFC 7636 (PKCE). Allowed characters: A-Z, a-z, 0-9, and the symbols -, ., _, ~.
const pkceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

// The OAuth2 specification (RFC 6749) doesn't mandate a specific length for
// the state parameter, it recommends a random, unguessable string. 32
// characters gives a comfortable margin.
const Oauth2StateLength = 32

// Defined in RFC 7636 (PKCE). Its length must be between 43 and 128 characters.
const OauthCodeVerifierLength = 43

// PKCECodeChallengeMethod is the only challenge method this code emits.
const PKCECodeChallengeMethod = "S256"

// Oauth2State returns the CSRF-protection state parameter linking an
// authorization request to its callback. URL-safe, alphanumeric only.
func Oauth2State() string {
	return RandomString(Oauth2StateLength, AlphanumericAlphabet)
}

// Oauth2CodeVerifier returns a PKCE code verifier.
func Oauth2CodeVerifier() string {
	return RandomString(OauthCodeVerifierLength, pkceAlphabet)
}

// S256Challenge derives the PKCE code challenge from a verifier per RFC 7636:
// BASE64URL(SHA256(verifier)), unpadded.
func S256Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
