package config

import (
	"time"
)

// Duration wraps time.Duration for TOML text (un)marshalling, so config
// files can say `duration = "45m"`.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Session struct {
	// Secret signs the session cookie token. Minimum 32 bytes.
	// Overridable via the SESSION_SECRET environment variable.
	Secret              string   `toml:"secret" env:"SESSION_SECRET"`
	Duration            Duration `toml:"duration"`
	CookieName          string   `toml:"cookie_name"`
	OAuth2StateDuration Duration `toml:"oauth2_state_duration"`
	PurgeInterval       Duration `toml:"purge_interval"`
	CacheSize           string   `toml:"cache_size"`
}

type Server struct {
	Addr                    string   `toml:"addr"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`
	// ClientIpProxyHeader names a trusted proxy header (e.g. X-Forwarded-For)
	// to read the client IP from. Empty means use the connection address.
	ClientIpProxyHeader string `toml:"client_ip_proxy_header"`
}

type Movies struct {
	BaseURL string `toml:"base_url"`
	// APIKey authenticates against the external movie API.
	// Overridable via the MOVIES_API_KEY environment variable.
	APIKey        string   `toml:"api_key" env:"MOVIES_API_KEY"`
	Timeout       Duration `toml:"timeout"`
	CacheTTL      Duration `toml:"cache_ttl"`
	CacheSize     string   `toml:"cache_size"`
	RatePerSecond float64  `toml:"rate_per_second"`
	Burst         int      `toml:"burst"`
}

type OAuth2Provider struct {
	Name         string   `toml:"name"`
	DisplayName  string   `toml:"display_name"`
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	// RedirectURL is the full callback URL registered with the provider.
	// When empty, it is built from the request host plus RedirectURLPath.
	RedirectURL     string   `toml:"redirect_url"`
	RedirectURLPath string   `toml:"redirect_url_path"`
	AuthURL         string   `toml:"auth_url"`
	TokenURL        string   `toml:"token_url"`
	UserInfoURL     string   `toml:"user_info_url"`
	Scopes          []string `toml:"scopes"`
	PKCE            bool     `toml:"pkce"`
}

type Endpoints struct {
	ListEndpoints        string `toml:"list_endpoints"`
	AuthWithPassword     string `toml:"auth_with_password"`
	RegisterWithPassword string `toml:"register_with_password"`
	ListOAuth2Providers  string `toml:"list_oauth2_providers"`
	OAuth2Redirect       string `toml:"oauth2_redirect"`
	OAuth2Callback       string `toml:"oauth2_callback"`
	Logout               string `toml:"logout"`
	Favorites            string `toml:"favorites"`
	UpdateFavorite       string `toml:"update_favorite"`
	MovieSearch          string `toml:"movie_search"`
}

type Metrics struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
	// AllowedIPs lists exact client IPs allowed to scrape. No CIDR ranges.
	AllowedIPs []string `toml:"allowed_ips"`
}

type Config struct {
	PublicDir       string                    `toml:"public_dir"`
	Session         Session                   `toml:"session"`
	Server          Server                    `toml:"server"`
	Movies          Movies                    `toml:"movies"`
	OAuth2Providers map[string]OAuth2Provider `toml:"oauth2_providers"`
	Endpoints       Endpoints                 `toml:"endpoints"`
	Metrics         Metrics                   `toml:"metrics"`
}
