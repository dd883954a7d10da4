package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSigningKey = []byte("test_secret_32_bytes_long_xxxxxx")

func TestNewJwtAndParseRoundTrip(t *testing.T) {
	token, expiry, err := NewJwt(jwt.MapClaims{"foo": "bar"}, testSigningKey, 15*time.Minute)
	if err != nil {
		t.Fatalf("NewJwt() error = %v", err)
	}
	if time.Until(expiry) <= 0 {
		t.Errorf("NewJwt() expiry %v is not in the future", expiry)
	}

	claims, err := ParseJwt(token, testSigningKey)
	if err != nil {
		t.Fatalf("ParseJwt() error = %v", err)
	}
	if claims["foo"] != "bar" {
		t.Errorf("claims[foo] = %v, want bar", claims["foo"])
	}
	if _, ok := claims[ClaimIssuedAt]; !ok {
		t.Error("claims missing iat")
	}
	if _, ok := claims[ClaimExpiresAt]; !ok {
		t.Error("claims missing exp")
	}
}

func TestNewJwtShortSecret(t *testing.T) {
	_, _, err := NewJwt(jwt.MapClaims{}, []byte("short"), time.Minute)
	if !errors.Is(err, ErrJwtInvalidSecretLength) {
		t.Errorf("NewJwt() error = %v, want ErrJwtInvalidSecretLength", err)
	}
}

func TestParseJwtExpired(t *testing.T) {
	token, _, err := NewJwt(jwt.MapClaims{}, testSigningKey, -time.Minute)
	if err != nil {
		t.Fatalf("NewJwt() error = %v", err)
	}

	_, err = ParseJwt(token, testSigningKey)
	if !errors.Is(err, ErrJwtTokenExpired) {
		t.Errorf("ParseJwt() error = %v, want ErrJwtTokenExpired", err)
	}
}

func TestParseJwtWrongKey(t *testing.T) {
	token, _, err := NewJwt(jwt.MapClaims{}, testSigningKey, time.Minute)
	if err != nil {
		t.Fatalf("NewJwt() error = %v", err)
	}

	if _, err := ParseJwt(token, []byte("another_secret_32_bytes_long_xxx")); err == nil {
		t.Error("ParseJwt() accepted a token signed with a different key")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, _, err := NewSessionToken("sess-abc123", testSigningKey, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken() error = %v", err)
	}

	sessionID, err := ParseSessionToken(token, testSigningKey)
	if err != nil {
		t.Fatalf("ParseSessionToken() error = %v", err)
	}
	if sessionID != "sess-abc123" {
		t.Errorf("ParseSessionToken() = %q, want %q", sessionID, "sess-abc123")
	}
}

func TestParseSessionTokenMissingClaim(t *testing.T) {
	token, _, err := NewJwt(jwt.MapClaims{}, testSigningKey, time.Minute)
	if err != nil {
		t.Fatalf("NewJwt() error = %v", err)
	}

	if _, err := ParseSessionToken(token, testSigningKey); !errors.Is(err, ErrJwtInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrJwtInvalidToken", err)
	}
}
