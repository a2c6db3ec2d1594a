package shared

import (
	"errors"
	"testing"
)

func TestSecret(t *testing.T) {
	t.Run("resolves a set variable", func(t *testing.T) {
		t.Setenv("TRACKBRIDGE_TEST_SECRET", "value")

		got, err := Secret("TRACKBRIDGE_TEST_SECRET")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "value" {
			t.Errorf("expected value, got %q", got)
		}
	})

	t.Run("unset variable maps to ErrMissingSecret", func(t *testing.T) {
		t.Setenv("TRACKBRIDGE_TEST_SECRET", "")

		if _, err := Secret("TRACKBRIDGE_TEST_SECRET"); !errors.Is(err, ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})
}

func TestApplySecrets(t *testing.T) {
	t.Run("environment wins over file values", func(t *testing.T) {
		t.Setenv(SecretSpotifyClientID, "env-id")
		t.Setenv(SecretSpotifyClientSecret, "env-secret")
		t.Setenv(SecretYouTubeAPIKey, "env-key")
		t.Setenv(SecretSpotifyStaticToken, "")

		config := &Config{}
		config.Credentials.Spotify.ClientID = "file-id"
		config.Credentials.Spotify.StaticToken = "file-token"

		config.ApplySecrets()

		if config.Credentials.Spotify.ClientID != "env-id" {
			t.Errorf("expected env-id, got %q", config.Credentials.Spotify.ClientID)
		}
		if config.Credentials.YouTube.APIKey != "env-key" {
			t.Errorf("expected env-key, got %q", config.Credentials.YouTube.APIKey)
		}
		if config.Credentials.Spotify.StaticToken != "file-token" {
			t.Errorf("expected file value to survive an unset secret, got %q", config.Credentials.Spotify.StaticToken)
		}
	})
}

func TestValidateCredentials(t *testing.T) {
	base := func() *Config {
		config := &Config{}
		config.Credentials.YouTube.APIKey = "key"
		return config
	}

	t.Run("accepts client credentials", func(t *testing.T) {
		config := base()
		config.Credentials.Spotify.ClientID = "id"
		config.Credentials.Spotify.ClientSecret = "secret"

		if err := config.ValidateCredentials(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("accepts a static token", func(t *testing.T) {
		config := base()
		config.Credentials.Spotify.StaticToken = "token"

		if err := config.ValidateCredentials(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a partial client credential pair", func(t *testing.T) {
		config := base()
		config.Credentials.Spotify.ClientID = "id"

		if err := config.ValidateCredentials(); !errors.Is(err, ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})

	t.Run("rejects a missing youtube key", func(t *testing.T) {
		config := &Config{}
		config.Credentials.Spotify.StaticToken = "token"

		if err := config.ValidateCredentials(); !errors.Is(err, ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})
}
