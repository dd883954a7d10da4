package oauth2

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/reelmark/reelmark/db"
)

const ProviderGoogle = "google"

// UserFromUserInfoURL maps a provider's userinfo response to a local user
// candidate. Only the fields needed to find or create the account are
// filled; the store assigns the id.
func UserFromUserInfoURL(resp *http.Response, providerName string) (*db.User, error) {
	switch providerName {
	case ProviderGoogle:
		return googleUser(resp)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerName)
	}
}

func googleUser(resp *http.Response) (*db.User, error) {
	extracted := struct {
		Sub           string `json:"sub"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&extracted); err != nil {
		return nil, fmt.Errorf("failed to decode google user info: %w", err)
	}

	// Accounts are keyed by email; an unverified address could hijack an
	// existing local account.
	if !extracted.EmailVerified {
		return nil, fmt.Errorf("google email not verified")
	}
	if extracted.Email == "" {
		return nil, fmt.Errorf("google user info missing email")
	}

	return &db.User{
		Email: extracted.Email,
		Name:  extracted.Name,
	}, nil
}
