package core

import (
	"net/http"

	"golang.org/x/oauth2"

	"github.com/reelmark/reelmark/crypto"
)

// OAuth2ProviderInfo contains the provider details needed for client-side OAuth2 flow
type OAuth2ProviderInfo struct {
	Name                string `json:"name"`
	DisplayName         string `json:"displayName"`
	State               string `json:"state"`
	AuthURL             string `json:"authURL"`
	RedirectURL         string `json:"redirectURL"`
	CodeVerifier        string `json:"codeVerifier,omitempty"`
	CodeChallenge       string `json:"codeChallenge,omitempty"`
	CodeChallengeMethod string `json:"codeChallengeMethod,omitempty"`
}

// OAuth2ProviderListData wraps the list of providers for standardized response
type OAuth2ProviderListData struct {
	Providers []OAuth2ProviderInfo `json:"providers"`
}

// ListOAuth2ProvidersHandler returns the configured OAuth2 providers with
// fresh state and PKCE material, for API clients driving the flow
// themselves. Providers without credentials are omitted.
//
// Example response:
//
//	{
//	  "status": 200,
//	  "code": "ok_oauth2_providers_list",
//	  "message": "OAuth2 providers list",
//	  "data": {
//	    "providers": [
//	      {
//	        "name": "google",
//	        "displayName": "Google",
//	        "state": "random-state-string",
//	        "authURL": "https://..."
//	      }
//	    ]
//	  }
//	}
//
// Endpoint: GET /api/list-oauth2-providers
// Authenticated: No
func (a *App) ListOAuth2ProvidersHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config()
	var providers []OAuth2ProviderInfo

	for name, provider := range cfg.OAuth2Providers {
		if provider.ClientID == "" {
			continue
		}

		oc := oauth2Config(r, provider)
		state := crypto.Oauth2State()

		info := OAuth2ProviderInfo{
			Name:        name,
			DisplayName: provider.DisplayName,
			State:       state,
			RedirectURL: oc.RedirectURL,
		}

		if provider.PKCE {
			codeVerifier := crypto.Oauth2CodeVerifier()
			codeChallenge := crypto.S256Challenge(codeVerifier)
			info.AuthURL = oc.AuthCodeURL(state,
				oauth2.SetAuthURLParam("code_challenge", codeChallenge),
				oauth2.SetAuthURLParam("code_challenge_method", crypto.PKCECodeChallengeMethod),
			)
			info.CodeVerifier = codeVerifier
			info.CodeChallenge = codeChallenge
			info.CodeChallengeMethod = crypto.PKCECodeChallengeMethod
		} else {
			info.AuthURL = oc.AuthCodeURL(state)
		}

		providers = append(providers, info)
	}

	if len(providers) == 0 {
		writeJsonError(w, errorInvalidOAuth2Provider)
		return
	}

	response := JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkOAuth2ProvidersList,
			Message: "OAuth2 providers list",
		},
		Data: OAuth2ProviderListData{Providers: providers},
	}
	writeJsonWithData(w, response)
}
