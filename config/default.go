package config

import (
	"time"

	"github.com/reelmark/reelmark/crypto"
)

// NewDefaultConfig creates a new Config with sensible defaults.
// The session secret is randomly generated.
func NewDefaultConfig() *Config {
	return &Config{
		PublicDir: "",
		Session: Session{
			Secret:              crypto.RandomString(32, crypto.AlphanumericAlphabet),
			Duration:            Duration{Duration: 24 * time.Hour},
			CookieName:          "reelmark_session",
			OAuth2StateDuration: Duration{Duration: 10 * time.Minute},
			PurgeInterval:       Duration{Duration: 1 * time.Hour},
			CacheSize:           "medium",
		},
		Server: Server{
			Addr:                    ":8080",
			ShutdownGracefulTimeout: Duration{Duration: 15 * time.Second},
			ReadTimeout:             Duration{Duration: 2 * time.Second},
			ReadHeaderTimeout:       Duration{Duration: 2 * time.Second},
			WriteTimeout:            Duration{Duration: 3 * time.Second},
			IdleTimeout:             Duration{Duration: 1 * time.Minute},
			ClientIpProxyHeader:     "",
		},
		Movies: Movies{
			BaseURL:       "https://www.omdbapi.com/",
			APIKey:        "",
			Timeout:       Duration{Duration: 5 * time.Second},
			CacheTTL:      Duration{Duration: 1 * time.Hour},
			CacheSize:     "medium",
			RatePerSecond: 5,
			Burst:         10,
		},
		OAuth2Providers: map[string]OAuth2Provider{
			"google": {
				Name:            "google",
				DisplayName:     "Google",
				ClientID:        "",
				ClientSecret:    "",
				RedirectURL:     "",
				RedirectURLPath: "/oauth2/google/callback",
				AuthURL:         "https://accounts.google.com/o/oauth2/v2/auth",
				TokenURL:        "https://oauth2.googleapis.com/token",
				UserInfoURL:     "https://www.googleapis.com/oauth2/v3/userinfo",
				Scopes: []string{
					"https://www.googleapis.com/auth/userinfo.profile",
					"https://www.googleapis.com/auth/userinfo.email",
				},
				PKCE: true,
			},
		},
		Endpoints: Endpoints{
			ListEndpoints:        "GET /api/list-endpoints",
			AuthWithPassword:     "POST /api/auth-with-password",
			RegisterWithPassword: "POST /api/register-with-password",
			ListOAuth2Providers:  "GET /api/list-oauth2-providers",
			OAuth2Redirect:       "GET /oauth2/:provider",
			OAuth2Callback:       "GET /oauth2/:provider/callback",
			Logout:               "GET /logout",
			Favorites:            "GET /favorites",
			UpdateFavorite:       "POST /api/favorite",
			MovieSearch:          "POST /api/movie-search",
		},
		Metrics: Metrics{
			Enabled:    true,
			Endpoint:   "/metrics",
			AllowedIPs: []string{"127.0.0.1", "::1"}, // Only exact IPs allowed, no CIDR ranges
		},
	}
}
