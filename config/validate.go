package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/reelmark/reelmark/crypto"
)

func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateSession(&cfg.Session); err != nil {
		return fmt.Errorf("session config validation failed: %w", err)
	}
	if err := validateMovies(&cfg.Movies); err != nil {
		return fmt.Errorf("movies config validation failed: %w", err)
	}
	if err := validateOAuth2Providers(cfg.OAuth2Providers); err != nil {
		return fmt.Errorf("oauth2 config validation failed: %w", err)
	}
	if err := validateMetrics(&cfg.Metrics); err != nil {
		return fmt.Errorf("metrics config validation failed: %w", err)
	}
	return nil
}

// validateServer checks the Server configuration section.
// It ensures the Addr field is not empty and contains a valid host:port or
// :port format. If only a port is provided (e.g., ":8080"), the host
// defaults to "localhost".
func validateServer(server *Server) error {
	if server.Addr == "" {
		return fmt.Errorf("server address (Addr) cannot be empty")
	}

	host, port, err := net.SplitHostPort(server.Addr)
	if err != nil {
		if strings.HasPrefix(server.Addr, ":") {
			port = strings.TrimPrefix(server.Addr, ":")
			host = "localhost"
		} else {
			return fmt.Errorf("invalid server address format '%s': %w", server.Addr, err)
		}
	}

	if port == "" {
		return fmt.Errorf("server address '%s' must include a port", server.Addr)
	}

	server.Addr = net.JoinHostPort(host, port)

	if _, err := net.LookupPort("tcp", port); err != nil {
		return fmt.Errorf("invalid port '%s' in server address '%s': %w", port, server.Addr, err)
	}

	return nil
}

func validateSession(session *Session) error {
	if len(session.Secret) < crypto.MinKeyLength {
		return fmt.Errorf("session secret must be at least %d bytes, got %d", crypto.MinKeyLength, len(session.Secret))
	}
	if session.Duration.Duration <= 0 {
		return fmt.Errorf("session duration must be positive")
	}
	if session.CookieName == "" {
		return fmt.Errorf("session cookie name cannot be empty")
	}
	if session.OAuth2StateDuration.Duration <= 0 {
		return fmt.Errorf("oauth2 state duration must be positive")
	}
	if session.PurgeInterval.Duration <= 0 {
		return fmt.Errorf("session purge interval must be positive")
	}
	return nil
}

func validateMovies(movies *Movies) error {
	parsed, err := url.Parse(movies.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("movies base URL '%s' is not a valid absolute URL", movies.BaseURL)
	}
	if movies.Timeout.Duration <= 0 {
		return fmt.Errorf("movies timeout must be positive")
	}
	if movies.RatePerSecond <= 0 {
		return fmt.Errorf("movies rate per second must be positive")
	}
	if movies.Burst < 1 {
		return fmt.Errorf("movies burst must be at least 1")
	}
	return nil
}

// validateOAuth2Providers checks only providers that have credentials
// configured; an unconfigured provider is simply skipped at runtime.
func validateOAuth2Providers(providers map[string]OAuth2Provider) error {
	for name, p := range providers {
		if p.ClientID == "" && p.ClientSecret == "" {
			continue
		}
		if p.ClientID == "" || p.ClientSecret == "" {
			return fmt.Errorf("provider '%s' has incomplete client credentials", name)
		}
		for field, value := range map[string]string{
			"auth_url":      p.AuthURL,
			"token_url":     p.TokenURL,
			"user_info_url": p.UserInfoURL,
		} {
			if value == "" {
				return fmt.Errorf("provider '%s' is missing %s", name, field)
			}
		}
		if p.RedirectURL == "" && p.RedirectURLPath == "" {
			return fmt.Errorf("provider '%s' needs a redirect URL or redirect URL path", name)
		}
	}
	return nil
}

func validateMetrics(metrics *Metrics) error {
	if !metrics.Enabled {
		return nil
	}
	if !strings.HasPrefix(metrics.Endpoint, "/") {
		return fmt.Errorf("metrics endpoint '%s' must start with /", metrics.Endpoint)
	}
	for _, ip := range metrics.AllowedIPs {
		if net.ParseIP(ip) == nil {
			return fmt.Errorf("metrics allowed IP '%s' is not a valid IP address", ip)
		}
	}
	return nil
}
