package core

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/crypto"
	oauth2provider "github.com/reelmark/reelmark/oauth2"
)

// oauth2TokenExchangeTimeout bounds the token exchange with the provider,
// so an unresponsive provider cannot hang the callback handler.
const oauth2TokenExchangeTimeout = 10 * time.Second

// loginPath is where every provider-auth failure lands. The flow is never
// retried server-side; the user simply gets the login page back.
const loginPath = "/login"

func oauth2StateCookieName(cfg *config.Config) string {
	return cfg.Session.CookieName + "_oauth2"
}

// oauth2Config builds the x/oauth2 client config for a provider. When no
// full redirect URL is configured, it is derived from the request host.
func oauth2Config(r *http.Request, provider config.OAuth2Provider) oauth2.Config {
	redirectURL := provider.RedirectURL
	if redirectURL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		redirectURL = scheme + "://" + r.Host + provider.RedirectURLPath
	}

	return oauth2.Config{
		ClientID:     provider.ClientID,
		ClientSecret: provider.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       provider.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  provider.AuthURL,
			TokenURL: provider.TokenURL,
		},
	}
}

// oauth2Failure logs the failure and sends the browser back to the login
// page. Every failure in the flow resolves to this one answer.
func (a *App) oauth2Failure(w http.ResponseWriter, r *http.Request, reason string, err error) {
	a.logger.Warn("oauth2: "+reason, "error", err)
	metricAuthAttempts.WithLabelValues(metricMethodOAuth2, metricOutcomeFailure).Inc()
	http.Redirect(w, r, loginPath, http.StatusFound)
}

// OAuth2RedirectHandler begins the server-side authorization-code flow.
// State (and the PKCE verifier, when enabled) is parked in a short-lived
// signed cookie until the provider calls back.
// Endpoint: GET /oauth2/:provider
// Authenticated: No
func (a *App) OAuth2RedirectHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config()
	name := a.Router().Param(r, "provider")

	provider, ok := cfg.OAuth2Providers[name]
	if !ok || provider.ClientID == "" {
		a.oauth2Failure(w, r, "unknown or unconfigured provider", nil)
		return
	}

	oc := oauth2Config(r, provider)
	state := crypto.Oauth2State()

	claims := jwt.MapClaims{
		crypto.ClaimOauth2State:    state,
		crypto.ClaimOauth2Provider: name,
	}

	var authURL string
	if provider.PKCE {
		verifier := crypto.Oauth2CodeVerifier()
		claims[crypto.ClaimOauth2Verifier] = verifier
		authURL = oc.AuthCodeURL(state,
			oauth2.SetAuthURLParam("code_challenge", crypto.S256Challenge(verifier)),
			oauth2.SetAuthURLParam("code_challenge_method", crypto.PKCECodeChallengeMethod),
		)
	} else {
		authURL = oc.AuthCodeURL(state)
	}

	stateDuration := cfg.Session.OAuth2StateDuration.Duration
	token, _, err := crypto.NewJwt(claims, []byte(cfg.Session.Secret), stateDuration)
	if err != nil {
		a.oauth2Failure(w, r, "failed to sign state token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauth2StateCookieName(cfg),
		Value:    token,
		Path:     "/",
		MaxAge:   int(stateDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, authURL, http.StatusFound)
}

// OAuth2CallbackHandler completes the flow: verifies state, exchanges the
// code, fetches the profile and finds or creates the local account. Any
// failure sends the browser back to the login page.
// Endpoint: GET /oauth2/:provider/callback
// Authenticated: No
func (a *App) OAuth2CallbackHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config()
	name := a.Router().Param(r, "provider")

	provider, ok := cfg.OAuth2Providers[name]
	if !ok || provider.ClientID == "" {
		a.oauth2Failure(w, r, "unknown or unconfigured provider", nil)
		return
	}

	query := r.URL.Query()
	if errCode := query.Get("error"); errCode != "" {
		a.oauth2Failure(w, r, "provider returned error: "+errCode, nil)
		return
	}

	code := query.Get("code")
	state := query.Get("state")
	if code == "" || state == "" {
		a.oauth2Failure(w, r, "missing code or state", nil)
		return
	}

	stateCookie, err := r.Cookie(oauth2StateCookieName(cfg))
	if err != nil {
		a.oauth2Failure(w, r, "missing state cookie", err)
		return
	}

	claims, err := crypto.ParseJwt(stateCookie.Value, []byte(cfg.Session.Secret))
	if err != nil {
		a.oauth2Failure(w, r, "invalid state token", err)
		return
	}

	// One-shot: the parked state is cleared whether or not the rest of the
	// flow succeeds.
	http.SetCookie(w, &http.Cookie{
		Name:     oauth2StateCookieName(cfg),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if parked, _ := claims[crypto.ClaimOauth2State].(string); parked != state {
		a.oauth2Failure(w, r, "state mismatch", nil)
		return
	}
	if parkedProvider, _ := claims[crypto.ClaimOauth2Provider].(string); parkedProvider != name {
		a.oauth2Failure(w, r, "provider mismatch", nil)
		return
	}

	oc := oauth2Config(r, provider)

	ctx, cancel := context.WithTimeout(r.Context(), oauth2TokenExchangeTimeout)
	defer cancel()

	var exchangeOpts []oauth2.AuthCodeOption
	if verifier, ok := claims[crypto.ClaimOauth2Verifier].(string); ok && verifier != "" {
		exchangeOpts = append(exchangeOpts, oauth2.SetAuthURLParam("code_verifier", verifier))
	}

	token, err := oc.Exchange(ctx, code, exchangeOpts...)
	if err != nil {
		a.oauth2Failure(w, r, "token exchange failed", err)
		return
	}

	client := oc.Client(ctx, token)
	resp, err := client.Get(provider.UserInfoURL)
	if err != nil {
		a.oauth2Failure(w, r, "user info fetch failed", err)
		return
	}
	defer resp.Body.Close()

	oauthUser, err := oauth2provider.UserFromUserInfoURL(resp, provider.Name)
	if err != nil {
		a.oauth2Failure(w, r, "user info processing failed", err)
		return
	}

	if err := ValidateEmail(oauthUser.Email); err != nil {
		a.oauth2Failure(w, r, "provider returned invalid email", err)
		return
	}

	// Find-or-create by email. CreateUserWithOauth2 upserts, so two racing
	// first-time logins both land on the single surviving row.
	user, err := a.DbAuth().GetUserByEmail(oauthUser.Email)
	if err != nil {
		a.oauth2Failure(w, r, "user lookup failed", err)
		return
	}
	if user == nil {
		user, err = a.DbAuth().CreateUserWithOauth2(*oauthUser)
		if err != nil {
			a.oauth2Failure(w, r, "user creation failed", err)
			return
		}
	}

	if err := a.Sessions().Serialize(w, user); err != nil {
		a.oauth2Failure(w, r, "failed to establish session", err)
		return
	}

	metricAuthAttempts.WithLabelValues(metricMethodOAuth2, metricOutcomeSuccess).Inc()
	http.Redirect(w, r, endpointPath(cfg.Endpoints.Favorites), http.StatusFound)
}
