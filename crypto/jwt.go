package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// MinKeyLength is the minimum required length for token signing keys.
	// 32 bytes (256 bits) is the minimum recommended length for HMAC-SHA256
	// keys to provide sufficient security against brute force attacks.
	MinKeyLength = 32

	// Standard claim keys
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"

	// ClaimSessionID carries the server-side session identifier. It is the
	// only payload claim of a session cookie token; the session record itself
	// never leaves the server.
	ClaimSessionID = "session_id"

	// Claims of the short-lived token parked in a cookie between the OAuth2
	// redirect and its callback.
	ClaimOauth2State    = "state"
	ClaimOauth2Verifier = "verifier"
	ClaimOauth2Provider = "provider"
)

var (
	// ErrJwtTokenExpired is returned when the token has expired
	ErrJwtTokenExpired = errors.New("token expired")
	// ErrJwtInvalidToken is returned when the token is invalid
	ErrJwtInvalidToken = errors.New("invalid token")
	// ErrJwtInvalidSigningMethod is returned when the signing method is not HS256
	ErrJwtInvalidSigningMethod = errors.New("unexpected signing method")
	// ErrJwtInvalidSecretLength is returned for invalid secret lengths
	ErrJwtInvalidSecretLength = errors.New("invalid secret length")
)

// ParseJwt verifies and parses a token and returns its claims as a
// map[string]any.
func ParseJwt(token string, verificationKey []byte) (jwt.MapClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	parsedToken, err := parser.Parse(token, func(t *jwt.Token) (any, error) {
		return verificationKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrJwtInvalidSigningMethod
		}
		return nil, fmt.Errorf("%w: %w", ErrJwtInvalidToken, err)
	}

	if claims, ok := parsedToken.Claims.(jwt.MapClaims); ok && parsedToken.Valid {
		return claims, nil
	}

	return nil, ErrJwtInvalidToken
}

// NewJwt generates a new signed token with the provided claims. The iat and
// exp claims are set from the current time and the given duration.
func NewJwt(payload jwt.MapClaims, signingKey []byte, duration time.Duration) (string, time.Time, error) {
	if len(signingKey) < MinKeyLength {
		return "", time.Time{}, ErrJwtInvalidSecretLength
	}

	now := time.Now()
	expirationTime := now.Add(duration)
	payload[ClaimIssuedAt] = now.Unix()
	payload[ClaimExpiresAt] = expirationTime.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	tokenString, err := token.SignedString(signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime, nil
}

// NewSessionToken wraps a session identifier in a signed token suitable for a
// cookie value. Only the identifier crosses the trust boundary.
func NewSessionToken(sessionID string, signingKey []byte, duration time.Duration) (string, time.Time, error) {
	return NewJwt(jwt.MapClaims{ClaimSessionID: sessionID}, signingKey, duration)
}

// ParseSessionToken verifies a session cookie token and extracts the session
// identifier.
func ParseSessionToken(token string, verificationKey []byte) (string, error) {
	claims, err := ParseJwt(token, verificationKey)
	if err != nil {
		return "", err
	}
	sessionID, ok := claims[ClaimSessionID].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("%w: missing session_id claim", ErrJwtInvalidToken)
	}
	return sessionID, nil
}
