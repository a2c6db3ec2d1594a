package shared

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Secret names resolved at startup.
const (
	SecretSpotifyClientID     = "SPOTIFY_CLIENT_ID"
	SecretSpotifyClientSecret = "SPOTIFY_CLIENT_SECRET"
	SecretSpotifyStaticToken  = "SPOTIFY_STATIC_TOKEN"
	SecretYouTubeAPIKey       = "YOUTUBE_API_KEY"
)

// LoadEnv loads a .env file into the process environment if one is present.
//
// A missing file is not an error; deployments may supply secrets directly.
func LoadEnv(path string) {
	if path == "" {
		path = ".env"
	}
	_ = godotenv.Load(path)
}

// Secret resolves a named secret from the environment.
//
// Fails with [ErrMissingSecret] when the name is unset or empty.
func Secret(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingSecret, name)
	}
	return value, nil
}

// ApplySecrets overlays environment-provided credentials onto the config.
//
// Called once at startup; environment values win over TOML values so that
// secret material can stay out of config files.
func (c *Config) ApplySecrets() {
	if v, err := Secret(SecretSpotifyClientID); err == nil {
		c.Credentials.Spotify.ClientID = v
	}
	if v, err := Secret(SecretSpotifyClientSecret); err == nil {
		c.Credentials.Spotify.ClientSecret = v
	}
	if v, err := Secret(SecretSpotifyStaticToken); err == nil {
		c.Credentials.Spotify.StaticToken = v
	}
	if v, err := Secret(SecretYouTubeAPIKey); err == nil {
		c.Credentials.YouTube.APIKey = v
	}
}

// ValidateCredentials checks that the config carries enough credential
// material to run both conversion directions.
func (c *Config) ValidateCredentials() error {
	spotify := c.Credentials.Spotify
	if spotify.StaticToken == "" && (spotify.ClientID == "" || spotify.ClientSecret == "") {
		return fmt.Errorf("%w: spotify client_id/client_secret or static_token", ErrMissingSecret)
	}
	if c.Credentials.YouTube.APIKey == "" {
		return fmt.Errorf("%w: youtube api_key", ErrMissingSecret)
	}
	return nil
}
